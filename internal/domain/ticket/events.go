package ticket

import (
	"github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"
)

const (
	EventTypeTicketCreated = "support.ticket_created"
	EventTypeTicketReplied = "support.ticket_replied"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	Number      string `json:"number"`
	Subject     string `json:"subject"`
	Priority    string `json:"priority"`
	RequesterID uint   `json:"requester_id"`
}

func NewTicketCreatedEvent(t *Ticket) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent:   events.NewBaseEvent(t.ID(), EventTypeTicketCreated),
		Number:      t.Number(),
		Subject:     t.Subject(),
		Priority:    t.Priority().String(),
		RequesterID: t.Requester().UserID,
	}
}

// TicketRepliedEvent carries what the requester notification needs.
type TicketRepliedEvent struct {
	events.BaseEvent
	Number         string `json:"number"`
	Subject        string `json:"subject"`
	RequesterEmail string `json:"requester_email"`
	RequesterName  string `json:"requester_name"`
	ReplyBody      string `json:"reply_body"`
	Status         string `json:"status"`
	StatusChanged  bool   `json:"status_changed"`
}

func NewTicketRepliedEvent(t *Ticket, reply *Message, statusChanged bool) TicketRepliedEvent {
	return TicketRepliedEvent{
		BaseEvent:      events.NewBaseEvent(t.ID(), EventTypeTicketReplied),
		Number:         t.Number(),
		Subject:        t.Subject(),
		RequesterEmail: t.Requester().Email,
		RequesterName:  t.Requester().Name,
		ReplyBody:      reply.Body(),
		Status:         t.Status().String(),
		StatusChanged:  statusChanged,
	}
}
