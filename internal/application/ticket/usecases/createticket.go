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

type CreateTicketCommand struct {
	Actor    authorization.Actor
	Subject  string
	Body     string
	Category string
	Priority string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	numbers    ticket.NumberGenerator
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	numbers ticket.NumberGenerator,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		numbers:    numbers,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "user_id", cmd.Actor.UserID, "category", cmd.Category)

	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		p, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		priority = p
	}
	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := ticket.NewTicket(cmd.Subject, cmd.Body, category, priority, ticket.Requester{
		UserID: cmd.Actor.UserID,
		Email:  cmd.Actor.Email,
		Name:   cmd.Actor.Name,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numbers.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}
	if err := t.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "number", number, "error", err)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("ticket number already in use, please retry")
		}
		return nil, errors.NewInternalError("failed to create ticket")
	}

	if err := uc.publisher.Publish(ticket.NewTicketCreatedEvent(t)); err != nil {
		uc.logger.Warnw("failed to publish ticket created event", "ticket_id", t.ID(), "error", err)
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID(), "number", t.Number())
	return dto.ToTicketDTO(t, false), nil
}
