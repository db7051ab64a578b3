package ticket

import "context"

type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// Delete removes the ticket and every message of its thread.
	Delete(ctx context.Context, id uint) error
	// GetByID loads the ticket with its thread.
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	// List returns tickets newest first, without threads.
	List(ctx context.Context) ([]*Ticket, error)
	ListByRequester(ctx context.Context, requesterID uint) ([]*Ticket, error)
	AddMessage(ctx context.Context, m *Message) error
}

// NumberGenerator issues human-facing ticket numbers.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}
