package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/application/ticket/dto"
	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	Actor    authorization.Actor
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := loadTicket(ctx, uc.ticketRepo, query.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}
	if !t.CanBeViewedBy(query.Actor.UserID, query.Actor.IsAdmin()) {
		// Other users' tickets are reported as missing.
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return dto.ToTicketDTO(t, true), nil
}
