package negotiation

import (
	"fmt"
	"time"

	vo "github.com/tradesbook-ie/tradesbook/internal/domain/negotiation/valueobjects"
)

const maxMessageLength = 1000

// ScheduleProposal is one suggested installation date and window for a booking.
// Only status, response message and respondedAt change after creation.
type ScheduleProposal struct {
	id              uint
	bookingID       uint
	installerID     uint
	proposedBy      vo.Party
	proposerUserID  uint
	proposedDate    time.Time
	timeSlot        vo.TimeSlot
	status          vo.ProposalStatus
	proposalMessage string
	responseMessage string
	proposedAt      time.Time
	respondedAt     *time.Time
}

func NewScheduleProposal(
	bookingID uint,
	installerID uint,
	proposedBy vo.Party,
	proposerUserID uint,
	proposedDate time.Time,
	timeSlot vo.TimeSlot,
	message string,
) (*ScheduleProposal, error) {
	if bookingID == 0 {
		return nil, fmt.Errorf("booking ID is required")
	}
	if installerID == 0 {
		return nil, fmt.Errorf("installer ID is required")
	}
	if !proposedBy.IsValid() {
		return nil, fmt.Errorf("invalid proposing party")
	}
	if proposerUserID == 0 {
		return nil, fmt.Errorf("proposer user ID is required")
	}
	if proposedDate.IsZero() {
		return nil, fmt.Errorf("proposed date is required")
	}
	if timeSlot.IsZero() {
		return nil, fmt.Errorf("time slot is required")
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}

	return &ScheduleProposal{
		bookingID:       bookingID,
		installerID:     installerID,
		proposedBy:      proposedBy,
		proposerUserID:  proposerUserID,
		proposedDate:    proposedDate,
		timeSlot:        timeSlot,
		status:          vo.StatusPending,
		proposalMessage: message,
		proposedAt:      time.Now().UTC(),
	}, nil
}

func ReconstructScheduleProposal(
	id, bookingID, installerID uint,
	proposedBy vo.Party,
	proposerUserID uint,
	proposedDate time.Time,
	timeSlot vo.TimeSlot,
	status vo.ProposalStatus,
	proposalMessage, responseMessage string,
	proposedAt time.Time,
	respondedAt *time.Time,
) (*ScheduleProposal, error) {
	if id == 0 {
		return nil, fmt.Errorf("proposal ID cannot be zero")
	}
	if !proposedBy.IsValid() {
		return nil, fmt.Errorf("invalid proposing party: %s", proposedBy)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid proposal status: %s", status)
	}
	return &ScheduleProposal{
		id:              id,
		bookingID:       bookingID,
		installerID:     installerID,
		proposedBy:      proposedBy,
		proposerUserID:  proposerUserID,
		proposedDate:    proposedDate,
		timeSlot:        timeSlot,
		status:          status,
		proposalMessage: proposalMessage,
		responseMessage: responseMessage,
		proposedAt:      proposedAt,
		respondedAt:     respondedAt,
	}, nil
}

func (p *ScheduleProposal) ID() uint                  { return p.id }
func (p *ScheduleProposal) BookingID() uint           { return p.bookingID }
func (p *ScheduleProposal) InstallerID() uint         { return p.installerID }
func (p *ScheduleProposal) ProposedBy() vo.Party      { return p.proposedBy }
func (p *ScheduleProposal) ProposerUserID() uint      { return p.proposerUserID }
func (p *ScheduleProposal) ProposedDate() time.Time   { return p.proposedDate }
func (p *ScheduleProposal) TimeSlot() vo.TimeSlot     { return p.timeSlot }
func (p *ScheduleProposal) Status() vo.ProposalStatus { return p.status }
func (p *ScheduleProposal) ProposalMessage() string   { return p.proposalMessage }
func (p *ScheduleProposal) ResponseMessage() string   { return p.responseMessage }
func (p *ScheduleProposal) ProposedAt() time.Time     { return p.proposedAt }
func (p *ScheduleProposal) RespondedAt() *time.Time   { return p.respondedAt }

func (p *ScheduleProposal) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("proposal ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("proposal ID cannot be zero")
	}
	p.id = id
	return nil
}

// Responder is the party entitled to answer this proposal.
func (p *ScheduleProposal) Responder() vo.Party {
	return p.proposedBy.Counterparty()
}

// Respond records the counterparty's answer. Only pending proposals can be answered.
func (p *ScheduleProposal) Respond(by vo.Party, outcome vo.Outcome, message string) error {
	if !outcome.IsValid() {
		return fmt.Errorf("invalid outcome: %s", outcome)
	}
	if by != p.Responder() {
		return ErrNotResponder
	}
	if !p.status.CanTransitionTo(outcome.Status()) {
		return fmt.Errorf("%w: proposal is %s", ErrNotPending, p.status)
	}
	if len(message) > maxMessageLength {
		return fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}

	now := time.Now().UTC()
	p.status = outcome.Status()
	p.responseMessage = message
	p.respondedAt = &now
	return nil
}

// Supersede marks a still-pending proposal as answered by a newer proposal.
// It reports whether the status changed.
func (p *ScheduleProposal) Supersede() bool {
	if !p.status.CanTransitionTo(vo.StatusCounterProposed) {
		return false
	}
	p.status = vo.StatusCounterProposed
	return true
}
