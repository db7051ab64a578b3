package mappers

import (
	"fmt"

	"github.com/tradesbook-ie/tradesbook/internal/domain/negotiation"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/negotiation/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/models"
)

// ProposalMapper converts between schedule proposals and persistence models.
type ProposalMapper interface {
	ToModel(p *negotiation.ScheduleProposal) *models.ScheduleProposalModel
	ToDomain(model *models.ScheduleProposalModel) (*negotiation.ScheduleProposal, error)
	ToDomainList(list []models.ScheduleProposalModel) ([]*negotiation.ScheduleProposal, error)
}

type ProposalMapperImpl struct{}

func NewProposalMapper() ProposalMapper {
	return &ProposalMapperImpl{}
}

func (m *ProposalMapperImpl) ToModel(p *negotiation.ScheduleProposal) *models.ScheduleProposalModel {
	return &models.ScheduleProposalModel{
		ID:               p.ID(),
		BookingID:        p.BookingID(),
		InstallerID:      p.InstallerID(),
		ProposedBy:       p.ProposedBy().String(),
		ProposerUserID:   p.ProposerUserID(),
		ProposedDate:     dateToModel(p.ProposedDate()),
		ProposedTimeSlot: p.TimeSlot().String(),
		Status:           p.Status().String(),
		ProposalMessage:  p.ProposalMessage(),
		ResponseMessage:  p.ResponseMessage(),
		ProposedAt:       p.ProposedAt().UnixMilli(),
		RespondedAt:      timePtrToMillis(p.RespondedAt()),
	}
}

func (m *ProposalMapperImpl) ToDomain(model *models.ScheduleProposalModel) (*negotiation.ScheduleProposal, error) {
	slot, err := vo.ParseTimeSlot(model.ProposedTimeSlot)
	if err != nil {
		return nil, fmt.Errorf("proposal %d: %w", model.ID, err)
	}

	return negotiation.ReconstructScheduleProposal(
		model.ID,
		model.BookingID,
		model.InstallerID,
		vo.Party(model.ProposedBy),
		model.ProposerUserID,
		dateFromModel(model.ProposedDate),
		slot,
		vo.ProposalStatus(model.Status),
		model.ProposalMessage,
		model.ResponseMessage,
		millisToTime(model.ProposedAt),
		millisPtrToTime(model.RespondedAt),
	)
}

func (m *ProposalMapperImpl) ToDomainList(list []models.ScheduleProposalModel) ([]*negotiation.ScheduleProposal, error) {
	out := make([]*negotiation.ScheduleProposal, 0, len(list))
	for i := range list {
		p, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
