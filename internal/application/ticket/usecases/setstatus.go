package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/application/ticket/dto"
	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/ticket/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

// SetStatusCommand changes status and, when AssignedTo is set, the assignee.
// An AssignedTo of 0 clears the assignment.
type SetStatusCommand struct {
	TicketID   uint
	Actor      authorization.Actor
	Status     string
	AssignedTo *uint
}

type SetStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewSetStatusUseCase(ticketRepo ticket.Repository, logger logger.Interface) *SetStatusUseCase {
	return &SetStatusUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *SetStatusUseCase) Execute(ctx context.Context, cmd SetStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing set ticket status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can change ticket status")
	}
	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := loadTicket(ctx, uc.ticketRepo, cmd.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}

	oldStatus := t.Status()
	changed, err := t.ChangeStatus(status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.AssignedTo != nil {
		t.AssignTo(cmd.AssignedTo)
		changed = true
	}
	if !changed {
		return dto.ToTicketDTO(t, true), nil
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update ticket status")
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"old_status", oldStatus,
		"new_status", t.Status(),
		"assigned_to", t.AssignedTo(),
	)
	return dto.ToTicketDTO(t, true), nil
}
