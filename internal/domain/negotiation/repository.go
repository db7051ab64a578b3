package negotiation

import "context"

type Repository interface {
	Create(ctx context.Context, proposal *ScheduleProposal) error
	// Update persists status, response message and respondedAt only.
	Update(ctx context.Context, proposal *ScheduleProposal) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*ScheduleProposal, error)
	// ListByBooking returns every proposal of the booking, newest first.
	ListByBooking(ctx context.Context, bookingID uint) ([]*ScheduleProposal, error)
}
