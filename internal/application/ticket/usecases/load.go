package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

func loadTicket(ctx context.Context, repo ticket.Repository, id uint, log logger.Interface) (*ticket.Ticket, error) {
	if id == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	t, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		log.Errorw("failed to get ticket", "ticket_id", id, "error", err)
		return nil, errors.NewInternalError("failed to get ticket")
	}
	return t, nil
}
