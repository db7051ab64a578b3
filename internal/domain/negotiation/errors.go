package negotiation

import "errors"

var (
	// ErrNotResponder is returned when the proposing side tries to answer its own proposal.
	ErrNotResponder = errors.New("only the other party can respond to this proposal")
	// ErrNotPending is returned when answering a proposal that is already resolved.
	ErrNotPending = errors.New("proposal is no longer pending")
	// ErrLatestProposal protects the booking's current proposal from deletion.
	ErrLatestProposal = errors.New("the most recent proposal cannot be deleted")
)
