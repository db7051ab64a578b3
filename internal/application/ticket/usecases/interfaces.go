package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/application/ticket/dto"
)

type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type AddMessageExecutor interface {
	Execute(ctx context.Context, cmd AddMessageCommand) (*dto.MessageDTO, error)
}

type ReplyTicketExecutor interface {
	Execute(ctx context.Context, cmd ReplyTicketCommand) (*dto.TicketDTO, error)
}

type SetStatusExecutor interface {
	Execute(ctx context.Context, cmd SetStatusCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}
