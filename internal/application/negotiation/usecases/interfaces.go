package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/application/negotiation/dto"
)

// TransactionRunner is satisfied by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ListProposalsExecutor interface {
	Execute(ctx context.Context, query ListProposalsQuery) (*dto.ProposalListDTO, error)
}

type ProposeScheduleExecutor interface {
	Execute(ctx context.Context, cmd ProposeScheduleCommand) (*dto.ProposalDTO, error)
}

type RespondToProposalExecutor interface {
	Execute(ctx context.Context, cmd RespondToProposalCommand) (*RespondToProposalResult, error)
}

type DeleteProposalExecutor interface {
	Execute(ctx context.Context, cmd DeleteProposalCommand) error
}
