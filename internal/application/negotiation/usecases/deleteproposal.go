package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	"github.com/tradesbook-ie/tradesbook/internal/domain/negotiation"
	"github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

type DeleteProposalCommand struct {
	ProposalID uint
	Actor      authorization.Actor
}

type DeleteProposalUseCase struct {
	bookingRepo  booking.Repository
	proposalRepo negotiation.Repository
	txRunner     TransactionRunner
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewDeleteProposalUseCase(
	bookingRepo booking.Repository,
	proposalRepo negotiation.Repository,
	txRunner TransactionRunner,
	publisher events.EventPublisher,
	logger logger.Interface,
) *DeleteProposalUseCase {
	return &DeleteProposalUseCase{
		bookingRepo:  bookingRepo,
		proposalRepo: proposalRepo,
		txRunner:     txRunner,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *DeleteProposalUseCase) Execute(ctx context.Context, cmd DeleteProposalCommand) error {
	uc.logger.Infow("executing delete proposal use case", "proposal_id", cmd.ProposalID, "user_id", cmd.Actor.UserID)

	proposal, err := uc.proposalRepo.GetByID(ctx, cmd.ProposalID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to get proposal", "proposal_id", cmd.ProposalID, "error", err)
		return errors.NewInternalError("failed to get proposal")
	}

	b, err := loadBooking(ctx, uc.bookingRepo, proposal.BookingID(), uc.logger)
	if err != nil {
		return err
	}
	if _, ok := partyOf(b, cmd.Actor); !ok && !cmd.Actor.IsAdmin() {
		return errors.NewForbiddenError("you are not part of this booking")
	}

	// The newest-proposal check and the delete hold the booking row lock.
	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.bookingRepo.GetByIDForUpdate(txCtx, b.ID()); err != nil {
			return err
		}
		all, err := uc.proposalRepo.ListByBooking(txCtx, b.ID())
		if err != nil {
			return err
		}
		if err := negotiation.EnsureDeletable(all, proposal); err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.proposalRepo.Delete(txCtx, proposal.ID())
	})
	if err != nil {
		if errors.IsValidationError(err) || errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete proposal", "proposal_id", proposal.ID(), "error", err)
		return errors.NewInternalError("failed to delete proposal")
	}

	if err := uc.publisher.Publish(negotiation.NewProposalDeletedEvent(proposal, cmd.Actor.UserID)); err != nil {
		uc.logger.Warnw("failed to publish proposal deleted event", "proposal_id", proposal.ID(), "error", err)
	}

	uc.logger.Infow("proposal deleted", "proposal_id", proposal.ID(), "booking_id", b.ID())
	return nil
}
