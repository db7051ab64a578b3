package dto

import (
	"time"

	"github.com/tradesbook-ie/tradesbook/internal/domain/negotiation"
	"github.com/tradesbook-ie/tradesbook/internal/shared/biztime"
)

type ProposalDTO struct {
	ID              uint       `json:"id"`
	BookingID       uint       `json:"booking_id"`
	InstallerID     uint       `json:"installer_id"`
	ProposedBy      string     `json:"proposed_by"`
	ProposedDate    string     `json:"proposed_date"`
	TimeSlot        string     `json:"proposed_time_slot"`
	SlotStart       string     `json:"slot_start"`
	SlotEnd         string     `json:"slot_end"`
	Status          string     `json:"status"`
	ProposalMessage string     `json:"proposal_message,omitempty"`
	ResponseMessage string     `json:"response_message,omitempty"`
	ProposedAt      time.Time  `json:"proposed_at"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	IsCurrent       bool       `json:"is_current"`
	CanRespond      bool       `json:"can_respond"`
	CanDelete       bool       `json:"can_delete"`
}

type ProposalGroupDTO struct {
	InstallerID uint          `json:"installer_id"`
	Proposals   []ProposalDTO `json:"proposals"`
	Total       int           `json:"total"`
	HiddenCount int           `json:"hidden_count"`
}

// ProposalListDTO.AwaitingResponse counts pending proposals the viewer is
// expected to answer.
type ProposalListDTO struct {
	BookingID         uint               `json:"booking_id"`
	CurrentProposalID *uint              `json:"current_proposal_id,omitempty"`
	AwaitingResponse  int                `json:"awaiting_response"`
	Proposals         []ProposalDTO      `json:"proposals"`
	Groups            []ProposalGroupDTO `json:"groups"`
}

// ToProposalDTO converts without viewer-specific flags.
func ToProposalDTO(p *negotiation.ScheduleProposal) ProposalDTO {
	slot := p.TimeSlot()
	return ProposalDTO{
		ID:              p.ID(),
		BookingID:       p.BookingID(),
		InstallerID:     p.InstallerID(),
		ProposedBy:      p.ProposedBy().String(),
		ProposedDate:    biztime.FormatDate(p.ProposedDate()),
		TimeSlot:        slot.String(),
		SlotStart:       slot.Start(),
		SlotEnd:         slot.End(),
		Status:          p.Status().String(),
		ProposalMessage: p.ProposalMessage(),
		ResponseMessage: p.ResponseMessage(),
		ProposedAt:      p.ProposedAt(),
		RespondedAt:     p.RespondedAt(),
	}
}
