package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/application/ticket/dto"
	"github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"
	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/ticket/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

// ReplyTicketCommand appends an admin reply. NewStatus is optional.
type ReplyTicketCommand struct {
	TicketID  uint
	Actor     authorization.Actor
	Message   string
	NewStatus string
}

type ReplyTicketUseCase struct {
	ticketRepo ticket.Repository
	txRunner   TransactionRunner
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewReplyTicketUseCase(
	ticketRepo ticket.Repository,
	txRunner TransactionRunner,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ReplyTicketUseCase {
	return &ReplyTicketUseCase{
		ticketRepo: ticketRepo,
		txRunner:   txRunner,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *ReplyTicketUseCase) Execute(ctx context.Context, cmd ReplyTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing reply ticket use case",
		"ticket_id", cmd.TicketID,
		"admin_id", cmd.Actor.UserID,
		"new_status", cmd.NewStatus,
	)

	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can reply to tickets")
	}

	var next *vo.TicketStatus
	if cmd.NewStatus != "" {
		s, err := vo.NewTicketStatus(cmd.NewStatus)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		next = &s
	}

	t, err := loadTicket(ctx, uc.ticketRepo, cmd.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}

	msg, changed, err := t.Reply(cmd.Actor.UserID, cmd.Message, next)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.AddMessage(txCtx, msg); err != nil {
			return err
		}
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket reply", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to reply to ticket")
	}

	if err := uc.publisher.Publish(ticket.NewTicketRepliedEvent(t, msg, changed)); err != nil {
		uc.logger.Warnw("failed to publish ticket replied event", "ticket_id", t.ID(), "error", err)
	}

	uc.logger.Infow("ticket replied",
		"ticket_id", t.ID(),
		"message_id", msg.ID(),
		"status", t.Status(),
		"status_changed", changed,
	)
	return dto.ToTicketDTO(t, true), nil
}
