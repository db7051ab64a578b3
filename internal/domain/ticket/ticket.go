package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/tradesbook-ie/tradesbook/internal/domain/ticket/valueobjects"
)

const (
	maxSubjectLength = 200
	maxBodyLength    = 5000
)

// Requester identifies who opened a ticket.
type Requester struct {
	UserID uint
	Email  string
	Name   string
}

type Ticket struct {
	id         uint
	number     string
	subject    string
	body       string
	category   vo.Category
	priority   vo.Priority
	status     vo.TicketStatus
	requester  Requester
	assignedTo *uint
	createdAt  time.Time
	updatedAt  time.Time
	closedAt   *time.Time
	messages   []*Message
}

func NewTicket(subject, body string, category vo.Category, priority vo.Priority, requester Requester) (*Ticket, error) {
	subject = strings.TrimSpace(subject)
	body = strings.TrimSpace(body)

	if subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > maxSubjectLength {
		return nil, fmt.Errorf("subject exceeds maximum length of %d characters", maxSubjectLength)
	}
	if body == "" {
		return nil, fmt.Errorf("body is required")
	}
	if len(body) > maxBodyLength {
		return nil, fmt.Errorf("body exceeds maximum length of %d characters", maxBodyLength)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if requester.UserID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	now := time.Now().UTC()
	return &Ticket{
		subject:   subject,
		body:      body,
		category:  category,
		priority:  priority,
		status:    vo.StatusOpen,
		requester: requester,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number, subject, body string,
	category vo.Category,
	priority vo.Priority,
	status vo.TicketStatus,
	requester Requester,
	assignedTo *uint,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
	messages []*Message,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if messages == nil {
		messages = []*Message{}
	}
	return &Ticket{
		id:         id,
		number:     number,
		subject:    subject,
		body:       body,
		category:   category,
		priority:   priority,
		status:     status,
		requester:  requester,
		assignedTo: assignedTo,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		closedAt:   closedAt,
		messages:   messages,
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) Number() string          { return t.number }
func (t *Ticket) Subject() string         { return t.subject }
func (t *Ticket) Body() string            { return t.body }
func (t *Ticket) Category() vo.Category   { return t.category }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) Requester() Requester    { return t.requester }
func (t *Ticket) AssignedTo() *uint       { return t.assignedTo }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }
func (t *Ticket) ClosedAt() *time.Time    { return t.closedAt }

// Messages returns the thread in chronological order.
func (t *Ticket) Messages() []*Message {
	out := make([]*Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if t.number != "" {
		return fmt.Errorf("ticket number is already set")
	}
	if number == "" {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// ChangeStatus sets any valid status, including reopening a closed ticket.
// It reports whether the status actually changed.
func (t *Ticket) ChangeStatus(next vo.TicketStatus) (bool, error) {
	if !next.IsValid() {
		return false, fmt.Errorf("invalid status: %s", next)
	}
	if t.status == next {
		return false, nil
	}

	now := time.Now().UTC()
	t.status = next
	t.updatedAt = now
	if next.IsClosed() {
		t.closedAt = &now
	} else {
		t.closedAt = nil
	}
	return true, nil
}

// AssignTo sets or clears (nil) the admin handling the ticket.
func (t *Ticket) AssignTo(adminID *uint) {
	if adminID != nil && *adminID == 0 {
		adminID = nil
	}
	t.assignedTo = adminID
	t.updatedAt = time.Now().UTC()
}

// AddMessage appends m to the thread.
func (t *Ticket) AddMessage(m *Message) error {
	if m == nil {
		return fmt.Errorf("message cannot be nil")
	}
	if m.TicketID() != t.id {
		return fmt.Errorf("message ticket ID mismatch")
	}
	t.messages = append(t.messages, m)
	t.updatedAt = time.Now().UTC()
	return nil
}

// Reply appends an admin message and, when next is set and differs from the
// current status, changes the status as part of the same operation.
func (t *Ticket) Reply(adminID uint, body string, next *vo.TicketStatus) (*Message, bool, error) {
	if next != nil && !next.IsValid() {
		return nil, false, fmt.Errorf("invalid status: %s", *next)
	}
	msg, err := NewMessage(t.id, adminID, body, true)
	if err != nil {
		return nil, false, err
	}
	if err := t.AddMessage(msg); err != nil {
		return nil, false, err
	}

	changed := false
	if next != nil {
		changed, err = t.ChangeStatus(*next)
		if err != nil {
			return nil, false, err
		}
	}
	return msg, changed, nil
}

// CanBeViewedBy allows admins and the requester.
func (t *Ticket) CanBeViewedBy(userID uint, isAdmin bool) bool {
	return isAdmin || (userID != 0 && userID == t.requester.UserID)
}
