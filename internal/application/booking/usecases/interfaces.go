package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/application/booking/dto"
)

type CreateBookingExecutor interface {
	Execute(ctx context.Context, cmd CreateBookingCommand) (*dto.BookingDTO, error)
}

type GetBookingExecutor interface {
	Execute(ctx context.Context, query GetBookingQuery) (*dto.BookingDTO, error)
}
