package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/negotiation/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

func loadBooking(ctx context.Context, repo booking.Repository, id uint, log logger.Interface) (*booking.Booking, error) {
	b, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		log.Errorw("failed to get booking", "booking_id", id, "error", err)
		return nil, errors.NewInternalError("failed to get booking")
	}
	return b, nil
}

// partyOf resolves which side of the booking the actor is on.
func partyOf(b *booking.Booking, actor authorization.Actor) (vo.Party, bool) {
	switch {
	case b.IsCustomer(actor.UserID):
		return vo.PartyCustomer, true
	case b.IsInstaller(actor.UserID):
		return vo.PartyInstaller, true
	}
	return "", false
}
