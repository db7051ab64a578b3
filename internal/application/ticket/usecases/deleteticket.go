package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

// DeleteTicketCommand removes a ticket and its thread. Confirmed must be set.
type DeleteTicketCommand struct {
	TicketID  uint
	Actor     authorization.Actor
	Confirmed bool
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	txRunner   TransactionRunner
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, txRunner TransactionRunner, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{ticketRepo: ticketRepo, txRunner: txRunner, logger: logger}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "admin_id", cmd.Actor.UserID)

	if !cmd.Actor.IsAdmin() {
		return errors.NewForbiddenError("only admins can delete tickets")
	}
	if !cmd.Confirmed {
		return errors.NewValidationError("ticket deletion must be confirmed", "pass confirm=true to delete the ticket and its messages")
	}

	t, err := loadTicket(ctx, uc.ticketRepo, cmd.TicketID, uc.logger)
	if err != nil {
		return err
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Delete(txCtx, t.ID())
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete ticket", "ticket_id", t.ID(), "error", err)
		return errors.NewInternalError("failed to delete ticket")
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", t.ID(), "number", t.Number(), "messages", len(t.Messages()))
	return nil
}
