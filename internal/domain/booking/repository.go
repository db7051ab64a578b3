package booking

import "context"

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	Update(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uint) (*Booking, error)
	// GetByIDForUpdate locks the booking row for the rest of the caller's
	// transaction, serialising work on the booking's children.
	GetByIDForUpdate(ctx context.Context, id uint) (*Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]*Booking, error)
}
