package valueobjects

import "fmt"

type ProposalStatus string

const (
	StatusPending         ProposalStatus = "pending"
	StatusAccepted        ProposalStatus = "accepted"
	StatusRejected        ProposalStatus = "rejected"
	StatusCounterProposed ProposalStatus = "counter_proposed"
)

func (s ProposalStatus) String() string {
	return string(s)
}

func (s ProposalStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCounterProposed:
		return true
	}
	return false
}

func (s ProposalStatus) IsPending() bool {
	return s == StatusPending
}

// CanTransitionTo allows only pending proposals to be resolved.
func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	return s == StatusPending && next != StatusPending && next.IsValid()
}

func NewProposalStatus(s string) (ProposalStatus, error) {
	status := ProposalStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid proposal status: %s", s)
	}
	return status, nil
}

// Outcome is the counterparty's answer to a pending proposal.
type Outcome string

const (
	OutcomeAccept Outcome = "accept"
	OutcomeReject Outcome = "reject"
)

func (o Outcome) IsValid() bool {
	return o == OutcomeAccept || o == OutcomeReject
}

// Status maps the answer to the resulting proposal status.
func (o Outcome) Status() ProposalStatus {
	if o == OutcomeAccept {
		return StatusAccepted
	}
	return StatusRejected
}

func NewOutcome(s string) (Outcome, error) {
	o := Outcome(s)
	if !o.IsValid() {
		return "", fmt.Errorf("invalid outcome: %s", s)
	}
	return o, nil
}
