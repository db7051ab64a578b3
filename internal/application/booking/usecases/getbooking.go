package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/application/booking/dto"
	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

type GetBookingQuery struct {
	BookingID uint
	Actor     authorization.Actor
}

type GetBookingUseCase struct {
	bookingRepo booking.Repository
	logger      logger.Interface
}

func NewGetBookingUseCase(bookingRepo booking.Repository, logger logger.Interface) *GetBookingUseCase {
	return &GetBookingUseCase{bookingRepo: bookingRepo, logger: logger}
}

func (uc *GetBookingUseCase) Execute(ctx context.Context, query GetBookingQuery) (*dto.BookingDTO, error) {
	b, err := uc.bookingRepo.GetByID(ctx, query.BookingID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get booking", "booking_id", query.BookingID, "error", err)
		return nil, errors.NewInternalError("failed to get booking")
	}

	if !query.Actor.IsAdmin() && !b.IsParty(query.Actor.UserID) {
		return nil, errors.NewForbiddenError("you are not part of this booking")
	}
	return dto.ToBookingDTO(b), nil
}
