package usecases

import (
	"context"

	"github.com/tradesbook-ie/tradesbook/internal/application/negotiation/dto"
	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	"github.com/tradesbook-ie/tradesbook/internal/domain/negotiation"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
	"github.com/tradesbook-ie/tradesbook/internal/shared/mapper"
)

type ListProposalsQuery struct {
	BookingID       uint
	Actor           authorization.Actor
	VisiblePerGroup int
}

type ListProposalsUseCase struct {
	bookingRepo  booking.Repository
	proposalRepo negotiation.Repository
	logger       logger.Interface
}

func NewListProposalsUseCase(
	bookingRepo booking.Repository,
	proposalRepo negotiation.Repository,
	logger logger.Interface,
) *ListProposalsUseCase {
	return &ListProposalsUseCase{
		bookingRepo:  bookingRepo,
		proposalRepo: proposalRepo,
		logger:       logger,
	}
}

func (uc *ListProposalsUseCase) Execute(ctx context.Context, query ListProposalsQuery) (*dto.ProposalListDTO, error) {
	b, err := loadBooking(ctx, uc.bookingRepo, query.BookingID, uc.logger)
	if err != nil {
		return nil, err
	}

	party, isParty := partyOf(b, query.Actor)
	if !isParty && !query.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("you are not part of this booking")
	}

	proposals, err := uc.proposalRepo.ListByBooking(ctx, b.ID())
	if err != nil {
		uc.logger.Errorw("failed to list proposals", "booking_id", b.ID(), "error", err)
		return nil, errors.NewInternalError("failed to list proposals")
	}
	negotiation.SortNewestFirst(proposals)

	// Current is decided over the whole booking, never per group.
	current := negotiation.Latest(proposals)
	view := func(p *negotiation.ScheduleProposal) dto.ProposalDTO {
		d := dto.ToProposalDTO(p)
		d.IsCurrent = current != nil && p.ID() == current.ID()
		d.CanRespond = isParty && p.Status().IsPending() && p.Responder() == party
		d.CanDelete = (isParty || query.Actor.IsAdmin()) && !d.IsCurrent
		return d
	}

	out := &dto.ProposalListDTO{
		BookingID: b.ID(),
		Proposals: mapper.MapSlice(proposals, view),
		Groups:    []dto.ProposalGroupDTO{},
	}
	if current != nil {
		id := current.ID()
		out.CurrentProposalID = &id
	}
	if isParty {
		out.AwaitingResponse = len(negotiation.PendingFor(proposals, party))
	}

	for _, g := range negotiation.GroupByInstaller(proposals, query.VisiblePerGroup) {
		out.Groups = append(out.Groups, dto.ProposalGroupDTO{
			InstallerID: g.InstallerID,
			Proposals:   mapper.MapSlice(g.Visible, view),
			Total:       len(g.Proposals),
			HiddenCount: g.HiddenCount,
		})
	}
	return out, nil
}
