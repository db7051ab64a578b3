package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/application/booking/dto"
	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	photovo "github.com/tradesbook-ie/tradesbook/internal/domain/photo/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

type CreateBookingCommand struct {
	Actor              authorization.Actor
	CustomerID         uint
	InstallerID        uint
	TVCount            int
	PhotoWorkflowStage string
}

type CreateBookingUseCase struct {
	bookingRepo booking.Repository
	logger      logger.Interface
}

func NewCreateBookingUseCase(bookingRepo booking.Repository, logger logger.Interface) *CreateBookingUseCase {
	return &CreateBookingUseCase{bookingRepo: bookingRepo, logger: logger}
}

func (uc *CreateBookingUseCase) Execute(ctx context.Context, cmd CreateBookingCommand) (*dto.BookingDTO, error) {
	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can create bookings")
	}

	stage := photovo.StageBoth
	if cmd.PhotoWorkflowStage != "" {
		s, err := photovo.NewWorkflowStage(cmd.PhotoWorkflowStage)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		stage = s
	}

	b, err := booking.NewBooking(cmd.CustomerID, cmd.InstallerID, cmd.TVCount, stage)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.bookingRepo.Create(ctx, b); err != nil {
		uc.logger.Errorw("failed to create booking", "customer_id", cmd.CustomerID, "error", err)
		return nil, errors.NewInternalError("failed to create booking")
	}

	uc.logger.Infow("booking created",
		"booking_id", b.ID(),
		"customer_id", b.CustomerID(),
		"installer_id", b.InstallerID(),
		"tv_count", b.TVCount(),
	)
	return dto.ToBookingDTO(b), nil
}
