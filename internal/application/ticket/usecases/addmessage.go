package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/application/ticket/dto"
	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

type AddMessageCommand struct {
	TicketID uint
	Actor    authorization.Actor
	Body     string
}

type AddMessageUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAddMessageUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AddMessageUseCase {
	return &AddMessageUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) (*dto.MessageDTO, error) {
	uc.logger.Infow("executing add message use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	t, err := loadTicket(ctx, uc.ticketRepo, cmd.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}
	if t.Requester().UserID != cmd.Actor.UserID {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if t.Status().IsClosed() {
		return nil, errors.NewValidationError("ticket is closed; open a new ticket instead")
	}

	msg, err := ticket.NewMessage(t.ID(), cmd.Actor.UserID, cmd.Body, false)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ticketRepo.AddMessage(ctx, msg); err != nil {
		uc.logger.Errorw("failed to add message", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to add message")
	}

	uc.logger.Infow("message added", "ticket_id", t.ID(), "message_id", msg.ID())
	out := dto.ToMessageDTO(msg)
	return &out, nil
}
