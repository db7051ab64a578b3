package booking

import (
	"fmt"
	"time"

	vo "github.com/tradesbook-ie/tradesbook/internal/domain/booking/valueobjects"
	photovo "github.com/tradesbook-ie/tradesbook/internal/domain/photo/valueobjects"
)

// MaxTVCount bounds a single installation job.
const MaxTVCount = 20

// Booking is an installation job between one customer and one installer.
type Booking struct {
	id                uint
	customerID        uint
	installerID       uint
	tvCount           int
	photoStage        photovo.WorkflowStage
	status            vo.BookingStatus
	scheduledDate     *time.Time
	scheduledSlot     string
	photosSubmittedAt *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

func NewBooking(customerID, installerID uint, tvCount int, stage photovo.WorkflowStage) (*Booking, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if installerID == 0 {
		return nil, fmt.Errorf("installer ID is required")
	}
	if customerID == installerID {
		return nil, fmt.Errorf("customer and installer must be different users")
	}
	if tvCount < 1 || tvCount > MaxTVCount {
		return nil, fmt.Errorf("tv count must be between 1 and %d", MaxTVCount)
	}
	if !stage.IsValid() {
		return nil, fmt.Errorf("invalid photo workflow stage")
	}

	now := time.Now().UTC()
	return &Booking{
		customerID:  customerID,
		installerID: installerID,
		tvCount:     tvCount,
		photoStage:  stage,
		status:      vo.StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id, customerID, installerID uint,
	tvCount int,
	stage photovo.WorkflowStage,
	status vo.BookingStatus,
	scheduledDate *time.Time,
	scheduledSlot string,
	photosSubmittedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	if id == 0 {
		return nil, fmt.Errorf("booking ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid booking status: %s", status)
	}
	if !stage.IsValid() {
		return nil, fmt.Errorf("invalid photo workflow stage: %s", stage)
	}
	return &Booking{
		id:                id,
		customerID:        customerID,
		installerID:       installerID,
		tvCount:           tvCount,
		photoStage:        stage,
		status:            status,
		scheduledDate:     scheduledDate,
		scheduledSlot:     scheduledSlot,
		photosSubmittedAt: photosSubmittedAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (b *Booking) ID() uint                          { return b.id }
func (b *Booking) CustomerID() uint                  { return b.customerID }
func (b *Booking) InstallerID() uint                 { return b.installerID }
func (b *Booking) TVCount() int                      { return b.tvCount }
func (b *Booking) PhotoStage() photovo.WorkflowStage { return b.photoStage }
func (b *Booking) Status() vo.BookingStatus          { return b.status }
func (b *Booking) ScheduledDate() *time.Time         { return b.scheduledDate }
func (b *Booking) ScheduledSlot() string             { return b.scheduledSlot }
func (b *Booking) PhotosSubmittedAt() *time.Time     { return b.photosSubmittedAt }
func (b *Booking) CreatedAt() time.Time              { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time              { return b.updatedAt }

func (b *Booking) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("booking ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("booking ID cannot be zero")
	}
	b.id = id
	return nil
}

func (b *Booking) IsCustomer(userID uint) bool {
	return userID != 0 && userID == b.customerID
}

func (b *Booking) IsInstaller(userID uint) bool {
	return userID != 0 && userID == b.installerID
}

func (b *Booking) IsParty(userID uint) bool {
	return b.IsCustomer(userID) || b.IsInstaller(userID)
}

// ApplySchedule records an agreed installation date and window and moves a
// pending booking to scheduled.
func (b *Booking) ApplySchedule(date time.Time, slot string) error {
	if b.status.IsTerminal() {
		return fmt.Errorf("cannot schedule a %s booking", b.status)
	}
	if slot == "" {
		return fmt.Errorf("time slot is required")
	}
	if b.status != vo.StatusInProgress {
		if !b.status.CanTransitionTo(vo.StatusScheduled) {
			return fmt.Errorf("cannot transition from %s to %s", b.status, vo.StatusScheduled)
		}
		b.status = vo.StatusScheduled
	}

	d := date
	b.scheduledDate = &d
	b.scheduledSlot = slot
	b.updatedAt = time.Now().UTC()
	return nil
}

// MarkPhotosSubmitted stamps the booking once the installer's photo set is accepted.
func (b *Booking) MarkPhotosSubmitted(at time.Time) {
	t := at.UTC()
	b.photosSubmittedAt = &t
	b.updatedAt = t
}
