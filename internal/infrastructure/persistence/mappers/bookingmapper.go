package mappers

import (
	"fmt"
	"time"

	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	vo "github.com/tradesbook-ie/tradesbook/internal/domain/booking/valueobjects"
	photovo "github.com/tradesbook-ie/tradesbook/internal/domain/photo/valueobjects"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/models"
)

// BookingMapper converts between Booking aggregates and persistence models.
type BookingMapper interface {
	ToModel(b *booking.Booking) *models.BookingModel
	ToDomain(model *models.BookingModel) (*booking.Booking, error)
}

type BookingMapperImpl struct{}

func NewBookingMapper() BookingMapper {
	return &BookingMapperImpl{}
}

func (m *BookingMapperImpl) ToModel(b *booking.Booking) *models.BookingModel {
	model := &models.BookingModel{
		ID:                 b.ID(),
		CustomerID:         b.CustomerID(),
		InstallerID:        b.InstallerID(),
		TVCount:            b.TVCount(),
		PhotoWorkflowStage: b.PhotoStage().String(),
		Status:             b.Status().String(),
		ScheduledTimeSlot:  b.ScheduledSlot(),
		PhotosSubmittedAt:  timePtrToMillis(b.PhotosSubmittedAt()),
		CreatedAt:          b.CreatedAt().UnixMilli(),
		UpdatedAt:          b.UpdatedAt().UnixMilli(),
	}
	if d := b.ScheduledDate(); d != nil {
		date := dateToModel(*d)
		model.ScheduledDate = &date
	}
	return model
}

func (m *BookingMapperImpl) ToDomain(model *models.BookingModel) (*booking.Booking, error) {
	stage, err := photovo.NewWorkflowStage(model.PhotoWorkflowStage)
	if err != nil {
		return nil, fmt.Errorf("booking %d: %w", model.ID, err)
	}

	var scheduledDate *time.Time
	if model.ScheduledDate != nil {
		d := dateFromModel(*model.ScheduledDate)
		scheduledDate = &d
	}

	return booking.ReconstructBooking(
		model.ID,
		model.CustomerID,
		model.InstallerID,
		model.TVCount,
		stage,
		vo.BookingStatus(model.Status),
		scheduledDate,
		model.ScheduledTimeSlot,
		millisPtrToTime(model.PhotosSubmittedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
