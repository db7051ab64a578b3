package ticket

import (
	"fmt"
	"strings"
	"time"
)

// Message is one entry of a ticket thread.
type Message struct {
	id           uint
	ticketID     uint
	authorID     uint
	body         string
	isAdminReply bool
	createdAt    time.Time
}

func NewMessage(ticketID, authorID uint, body string, isAdminReply bool) (*Message, error) {
	body = strings.TrimSpace(body)
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if body == "" {
		return nil, fmt.Errorf("message body is required")
	}
	if len(body) > maxBodyLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxBodyLength)
	}
	return &Message{
		ticketID:     ticketID,
		authorID:     authorID,
		body:         body,
		isAdminReply: isAdminReply,
		createdAt:    time.Now().UTC(),
	}, nil
}

func ReconstructMessage(id, ticketID, authorID uint, body string, isAdminReply bool, createdAt time.Time) *Message {
	return &Message{
		id:           id,
		ticketID:     ticketID,
		authorID:     authorID,
		body:         body,
		isAdminReply: isAdminReply,
		createdAt:    createdAt,
	}
}

func (m *Message) ID() uint             { return m.id }
func (m *Message) TicketID() uint       { return m.ticketID }
func (m *Message) AuthorID() uint       { return m.authorID }
func (m *Message) Body() string         { return m.body }
func (m *Message) IsAdminReply() bool   { return m.isAdminReply }
func (m *Message) CreatedAt() time.Time { return m.createdAt }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	m.id = id
	return nil
}
