package negotiation

import (
	"time"

	vo "github.com/tradesbook-ie/tradesbook/internal/domain/negotiation/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"
)

const (
	EventTypeProposalCreated  = "schedule.proposal_created"
	EventTypeProposalAccepted = "schedule.proposal_accepted"
	EventTypeProposalRejected = "schedule.proposal_rejected"
	EventTypeProposalDeleted  = "schedule.proposal_deleted"
)

// ProposalEvent is raised for every change to a booking's negotiation thread.
// The aggregate is the booking.
type ProposalEvent struct {
	events.BaseEvent
	ProposalID   uint      `json:"proposal_id"`
	InstallerID  uint      `json:"installer_id"`
	ProposedBy   string    `json:"proposed_by"`
	Status       string    `json:"status"`
	ProposedDate time.Time `json:"proposed_date"`
	TimeSlot     string    `json:"time_slot"`
	ActorID      uint      `json:"actor_id"`
}

func newProposalEvent(eventType string, p *ScheduleProposal, actorID uint) ProposalEvent {
	return ProposalEvent{
		BaseEvent:    events.NewBaseEvent(p.BookingID(), eventType),
		ProposalID:   p.ID(),
		InstallerID:  p.InstallerID(),
		ProposedBy:   p.ProposedBy().String(),
		Status:       p.Status().String(),
		ProposedDate: p.ProposedDate(),
		TimeSlot:     p.TimeSlot().String(),
		ActorID:      actorID,
	}
}

func NewProposalCreatedEvent(p *ScheduleProposal) ProposalEvent {
	return newProposalEvent(EventTypeProposalCreated, p, p.ProposerUserID())
}

// NewProposalRespondedEvent picks accepted or rejected from the proposal's status.
func NewProposalRespondedEvent(p *ScheduleProposal, actorID uint) ProposalEvent {
	eventType := EventTypeProposalRejected
	if p.Status() == vo.StatusAccepted {
		eventType = EventTypeProposalAccepted
	}
	return newProposalEvent(eventType, p, actorID)
}

func NewProposalDeletedEvent(p *ScheduleProposal, actorID uint) ProposalEvent {
	return newProposalEvent(EventTypeProposalDeleted, p, actorID)
}
