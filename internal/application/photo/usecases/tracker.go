package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	"github.com/tradesbook-ie/tradesbook/internal/domain/photo"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

// trackerLoader resolves a booking and its capture state for an actor.
type trackerLoader struct {
	bookingRepo booking.Repository
	photoRepo   photo.Repository
	logger      logger.Interface
}

// load checks access and returns the booking with its tracker. A booking
// without a stored session gets a fresh one that is persisted on first write.
// Only the booking's installer may write; admins may read.
func (l trackerLoader) load(ctx context.Context, bookingID uint, actor authorization.Actor, write bool) (*booking.Booking, *photo.Tracker, error) {
	b, err := l.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil, err
		}
		l.logger.Errorw("failed to get booking", "booking_id", bookingID, "error", err)
		return nil, nil, errors.NewInternalError("failed to get booking")
	}

	if !b.IsInstaller(actor.UserID) && (write || !actor.IsAdmin()) {
		return nil, nil, errors.NewForbiddenError("only the booking's installer can manage its photos")
	}

	session, err := l.photoRepo.GetSession(ctx, b.ID())
	if err != nil {
		if !errors.IsNotFoundError(err) {
			l.logger.Errorw("failed to get photo session", "booking_id", b.ID(), "error", err)
			return nil, nil, errors.NewInternalError("failed to get photo session")
		}
		session, err = photo.NewSession(b.ID(), b.InstallerID(), b.TVCount(), b.PhotoStage())
		if err != nil {
			return nil, nil, errors.NewValidationError(err.Error())
		}
	}

	rows, err := l.photoRepo.ListProgress(ctx, b.ID())
	if err != nil {
		l.logger.Errorw("failed to list photo progress", "booking_id", b.ID(), "error", err)
		return nil, nil, errors.NewInternalError("failed to list photo progress")
	}
	return b, photo.NewTracker(session, rows), nil
}
