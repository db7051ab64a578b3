package dto

import (
	"time"

	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	"github.com/tradesbook-ie/tradesbook/internal/shared/mapper"
)

type TicketDTO struct {
	ID               uint         `json:"id"`
	Number           string       `json:"ticket_number"`
	Subject          string       `json:"subject"`
	Body             string       `json:"body"`
	Category         string       `json:"category"`
	Priority         string       `json:"priority"`
	Status           string       `json:"status"`
	RequesterID      uint         `json:"requester_id"`
	RequesterEmail   string       `json:"requester_email"`
	RequesterName    string       `json:"requester_name"`
	AssignedTo       *uint        `json:"assigned_to"`
	FirstResponseDue time.Time    `json:"first_response_due"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
	ClosedAt         *time.Time   `json:"closed_at"`
	Messages         []MessageDTO `json:"messages,omitempty"`
}

type MessageDTO struct {
	ID           uint      `json:"id"`
	AuthorID     uint      `json:"author_id"`
	Body         string    `json:"body"`
	IsAdminReply bool      `json:"is_admin_reply"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToMessageDTO(m *ticket.Message) MessageDTO {
	return MessageDTO{
		ID:           m.ID(),
		AuthorID:     m.AuthorID(),
		Body:         m.Body(),
		IsAdminReply: m.IsAdminReply(),
		CreatedAt:    m.CreatedAt(),
	}
}

// ToTicketDTO includes the thread only when withMessages is set.
func ToTicketDTO(t *ticket.Ticket, withMessages bool) *TicketDTO {
	if t == nil {
		return nil
	}
	r := t.Requester()
	out := &TicketDTO{
		ID:               t.ID(),
		Number:           t.Number(),
		Subject:          t.Subject(),
		Body:             t.Body(),
		Category:         t.Category().String(),
		Priority:         t.Priority().String(),
		Status:           t.Status().String(),
		RequesterID:      r.UserID,
		RequesterEmail:   r.Email,
		RequesterName:    r.Name,
		AssignedTo:       t.AssignedTo(),
		FirstResponseDue: t.CreatedAt().Add(time.Duration(t.Priority().FirstResponseHours()) * time.Hour),
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
		ClosedAt:         t.ClosedAt(),
	}
	if withMessages {
		out.Messages = mapper.MapSlice(t.Messages(), ToMessageDTO)
	}
	return out
}

func ToTicketListDTO(tickets []*ticket.Ticket) []*TicketDTO {
	return mapper.MapSlice(tickets, func(t *ticket.Ticket) *TicketDTO { return ToTicketDTO(t, false) })
}
