package usecases

import (
	"context"
	"time"

	"github.com/tradesbook-ie/tradesbook/internal/application/negotiation/dto"
	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	"github.com/tradesbook-ie/tradesbook/internal/domain/negotiation"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/negotiation/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/biztime"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

// ProposeScheduleCommand carries either a named TimeSlot or an explicit
// StartTime/EndTime pair.
type ProposeScheduleCommand struct {
	BookingID uint
	Actor     authorization.Actor
	Date      string
	TimeSlot  string
	StartTime string
	EndTime   string
	Message   string
}

type ProposeScheduleUseCase struct {
	bookingRepo  booking.Repository
	proposalRepo negotiation.Repository
	txRunner     TransactionRunner
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewProposeScheduleUseCase(
	bookingRepo booking.Repository,
	proposalRepo negotiation.Repository,
	txRunner TransactionRunner,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ProposeScheduleUseCase {
	return &ProposeScheduleUseCase{
		bookingRepo:  bookingRepo,
		proposalRepo: proposalRepo,
		txRunner:     txRunner,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *ProposeScheduleUseCase) Execute(ctx context.Context, cmd ProposeScheduleCommand) (*dto.ProposalDTO, error) {
	uc.logger.Infow("executing propose schedule use case", "booking_id", cmd.BookingID, "user_id", cmd.Actor.UserID)

	date, slot, err := uc.parseWindow(cmd)
	if err != nil {
		return nil, err
	}

	b, err := loadBooking(ctx, uc.bookingRepo, cmd.BookingID, uc.logger)
	if err != nil {
		return nil, err
	}
	party, ok := partyOf(b, cmd.Actor)
	if !ok {
		return nil, errors.NewForbiddenError("only the booking's customer or installer can propose a schedule")
	}
	if b.Status().IsTerminal() {
		return nil, errors.NewValidationError("cannot negotiate a " + b.Status().String() + " booking")
	}

	proposal, err := negotiation.NewScheduleProposal(b.ID(), b.InstallerID(), party, cmd.Actor.UserID, date, slot, cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.bookingRepo.GetByIDForUpdate(txCtx, b.ID()); err != nil {
			return err
		}
		existing, err := uc.proposalRepo.ListByBooking(txCtx, b.ID())
		if err != nil {
			return err
		}
		for _, p := range existing {
			if p.Supersede() {
				if err := uc.proposalRepo.Update(txCtx, p); err != nil {
					return err
				}
			}
		}
		return uc.proposalRepo.Create(txCtx, proposal)
	})
	if err != nil {
		uc.logger.Errorw("failed to save proposal", "booking_id", b.ID(), "error", err)
		return nil, errors.NewInternalError("failed to save proposal")
	}

	if err := uc.publisher.Publish(negotiation.NewProposalCreatedEvent(proposal)); err != nil {
		uc.logger.Warnw("failed to publish proposal created event", "proposal_id", proposal.ID(), "error", err)
	}

	uc.logger.Infow("schedule proposed",
		"booking_id", b.ID(),
		"proposal_id", proposal.ID(),
		"proposed_by", party,
		"date", cmd.Date,
		"time_slot", slot.String(),
	)

	out := dto.ToProposalDTO(proposal)
	out.IsCurrent = true
	return &out, nil
}

func (uc *ProposeScheduleUseCase) parseWindow(cmd ProposeScheduleCommand) (date time.Time, slot vo.TimeSlot, err error) {
	date, err = biztime.ParseDate(cmd.Date)
	if err != nil {
		return date, slot, errors.NewValidationError("proposed date must be YYYY-MM-DD")
	}
	if date.Before(biztime.Today()) {
		return date, slot, errors.NewValidationError("proposed date cannot be in the past")
	}

	if cmd.TimeSlot != "" {
		slot, err = vo.NewNamedTimeSlot(cmd.TimeSlot)
	} else {
		slot, err = vo.NewCustomTimeSlot(cmd.StartTime, cmd.EndTime)
	}
	if err != nil {
		return date, slot, errors.NewValidationError(err.Error())
	}
	return date, slot, nil
}
