package dto

import (
	"time"

	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	"github.com/tradesbook-ie/tradesbook/internal/shared/biztime"
)

type BookingDTO struct {
	ID                 uint       `json:"id"`
	CustomerID         uint       `json:"customer_id"`
	InstallerID        uint       `json:"installer_id"`
	TVCount            int        `json:"tv_count"`
	PhotoWorkflowStage string     `json:"photo_workflow_stage"`
	Status             string     `json:"status"`
	ScheduledDate      string     `json:"scheduled_date,omitempty"`
	ScheduledTimeSlot  string     `json:"scheduled_time_slot,omitempty"`
	PhotosSubmittedAt  *time.Time `json:"photos_submitted_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func ToBookingDTO(b *booking.Booking) *BookingDTO {
	if b == nil {
		return nil
	}
	out := &BookingDTO{
		ID:                 b.ID(),
		CustomerID:         b.CustomerID(),
		InstallerID:        b.InstallerID(),
		TVCount:            b.TVCount(),
		PhotoWorkflowStage: b.PhotoStage().String(),
		Status:             b.Status().String(),
		ScheduledTimeSlot:  b.ScheduledSlot(),
		PhotosSubmittedAt:  b.PhotosSubmittedAt(),
		CreatedAt:          b.CreatedAt(),
		UpdatedAt:          b.UpdatedAt(),
	}
	if d := b.ScheduledDate(); d != nil {
		out.ScheduledDate = biztime.FormatDate(*d)
	}
	return out
}
