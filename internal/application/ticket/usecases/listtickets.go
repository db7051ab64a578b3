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

// ListTicketsQuery lists every ticket for admins, or only the actor's own
// tickets when Mine is set.
type ListTicketsQuery struct {
	Actor    authorization.Actor
	Mine     bool
	Status   string
	Priority string
	Search   string
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO `json:"tickets"`
	Total   int              `json:"total"`
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if !query.Mine && !query.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can list all tickets")
	}

	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	var tickets []*ticket.Ticket
	if query.Mine {
		tickets, err = uc.ticketRepo.ListByRequester(ctx, query.Actor.UserID)
	} else {
		tickets, err = uc.ticketRepo.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", query.Actor.UserID, "mine", query.Mine, "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	visible := filter.Apply(tickets)
	return &ListTicketsResult{
		Tickets: dto.ToTicketListDTO(visible),
		Total:   len(visible),
	}, nil
}

func buildFilter(query ListTicketsQuery) (ticket.Filter, error) {
	f := ticket.Filter{Search: query.Search}
	if query.Status != "" {
		s, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return f, errors.NewValidationError(err.Error())
		}
		f.Status = &s
	}
	if query.Priority != "" {
		p, err := vo.NewPriority(query.Priority)
		if err != nil {
			return f, errors.NewValidationError(err.Error())
		}
		f.Priority = &p
	}
	return f, nil
}
