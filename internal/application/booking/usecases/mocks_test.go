package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
)

type mockBookingRepository struct {
	CreateFunc     func(ctx context.Context, b *booking.Booking) error
	UpdateFunc     func(ctx context.Context, b *booking.Booking) error
	GetByIDFunc    func(ctx context.Context, id uint) (*booking.Booking, error)
	ListByUserFunc func(ctx context.Context, userID uint) ([]*booking.Booking, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return b.SetID(1)
}

func (m *mockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id uint) (*booking.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBookingRepository) GetByIDForUpdate(ctx context.Context, id uint) (*booking.Booking, error) {
	return m.GetByID(ctx, id)
}

func (m *mockBookingRepository) ListByUser(ctx context.Context, userID uint) ([]*booking.Booking, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}
