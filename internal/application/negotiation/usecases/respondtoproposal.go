package usecases

import (
	"context"
	stderrors "errors"

	bookingdto "github.com/tradesbook-ie/tradesbook/internal/application/booking/dto"
	"github.com/tradesbook-ie/tradesbook/internal/application/negotiation/dto"
	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	"github.com/tradesbook-ie/tradesbook/internal/domain/negotiation"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/negotiation/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

type RespondToProposalCommand struct {
	ProposalID uint
	Actor      authorization.Actor
	Outcome    string
	Message    string
}

type RespondToProposalResult struct {
	Proposal dto.ProposalDTO        `json:"proposal"`
	Booking  *bookingdto.BookingDTO `json:"booking"`
}

type RespondToProposalUseCase struct {
	bookingRepo  booking.Repository
	proposalRepo negotiation.Repository
	txRunner     TransactionRunner
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewRespondToProposalUseCase(
	bookingRepo booking.Repository,
	proposalRepo negotiation.Repository,
	txRunner TransactionRunner,
	publisher events.EventPublisher,
	logger logger.Interface,
) *RespondToProposalUseCase {
	return &RespondToProposalUseCase{
		bookingRepo:  bookingRepo,
		proposalRepo: proposalRepo,
		txRunner:     txRunner,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *RespondToProposalUseCase) Execute(ctx context.Context, cmd RespondToProposalCommand) (*RespondToProposalResult, error) {
	uc.logger.Infow("executing respond to proposal use case",
		"proposal_id", cmd.ProposalID,
		"user_id", cmd.Actor.UserID,
		"outcome", cmd.Outcome,
	)

	outcome, err := vo.NewOutcome(cmd.Outcome)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	proposal, err := uc.proposalRepo.GetByID(ctx, cmd.ProposalID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get proposal", "proposal_id", cmd.ProposalID, "error", err)
		return nil, errors.NewInternalError("failed to get proposal")
	}

	b, err := loadBooking(ctx, uc.bookingRepo, proposal.BookingID(), uc.logger)
	if err != nil {
		return nil, err
	}
	party, ok := partyOf(b, cmd.Actor)
	if !ok {
		return nil, errors.NewForbiddenError("only the booking's customer or installer can respond")
	}

	if err := proposal.Respond(party, outcome, cmd.Message); err != nil {
		switch {
		case stderrors.Is(err, negotiation.ErrNotResponder):
			return nil, errors.NewForbiddenError(err.Error())
		default:
			return nil, errors.NewValidationError(err.Error())
		}
	}

	accepted := proposal.Status() == vo.StatusAccepted
	if accepted {
		if err := b.ApplySchedule(proposal.ProposedDate(), proposal.TimeSlot().String()); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.proposalRepo.Update(txCtx, proposal); err != nil {
			return err
		}
		if accepted {
			return uc.bookingRepo.Update(txCtx, b)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to save proposal response", "proposal_id", proposal.ID(), "error", err)
		return nil, errors.NewInternalError("failed to save proposal response")
	}

	if err := uc.publisher.Publish(negotiation.NewProposalRespondedEvent(proposal, cmd.Actor.UserID)); err != nil {
		uc.logger.Warnw("failed to publish proposal response event", "proposal_id", proposal.ID(), "error", err)
	}

	uc.logger.Infow("proposal answered",
		"proposal_id", proposal.ID(),
		"booking_id", b.ID(),
		"status", proposal.Status(),
		"booking_status", b.Status(),
	)

	return &RespondToProposalResult{
		Proposal: dto.ToProposalDTO(proposal),
		Booking:  bookingdto.ToBookingDTO(b),
	}, nil
}
