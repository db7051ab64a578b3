package photo

import (
	"fmt"
	"time"

	vo "github.com/tradesbook-ie/tradesbook/internal/domain/photo/valueobjects"
)

// Progress is the photo state of one TV slot of a booking. There is exactly
// one row per (booking, tvIndex); removing a photo clears its fields only.
type Progress struct {
	id           uint
	bookingID    uint
	installerID  uint
	tvIndex      int
	beforeURL    string
	afterURL     string
	beforeSource vo.Source
	afterSource  vo.Source
	createdAt    time.Time
	updatedAt    time.Time
}

func NewProgress(bookingID, installerID uint, tvIndex int) (*Progress, error) {
	if bookingID == 0 {
		return nil, fmt.Errorf("booking ID is required")
	}
	if installerID == 0 {
		return nil, fmt.Errorf("installer ID is required")
	}
	if tvIndex < 0 {
		return nil, fmt.Errorf("tv index cannot be negative")
	}
	now := time.Now().UTC()
	return &Progress{
		bookingID:   bookingID,
		installerID: installerID,
		tvIndex:     tvIndex,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProgress(
	id, bookingID, installerID uint,
	tvIndex int,
	beforeURL, afterURL string,
	beforeSource, afterSource vo.Source,
	createdAt, updatedAt time.Time,
) (*Progress, error) {
	if id == 0 {
		return nil, fmt.Errorf("progress ID cannot be zero")
	}
	if afterSource != "" && afterSource != vo.SourceCamera {
		return nil, fmt.Errorf("after photo source must be camera, got %s", afterSource)
	}
	return &Progress{
		id:           id,
		bookingID:    bookingID,
		installerID:  installerID,
		tvIndex:      tvIndex,
		beforeURL:    beforeURL,
		afterURL:     afterURL,
		beforeSource: beforeSource,
		afterSource:  afterSource,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Progress) ID() uint                { return p.id }
func (p *Progress) BookingID() uint         { return p.bookingID }
func (p *Progress) InstallerID() uint       { return p.installerID }
func (p *Progress) TVIndex() int            { return p.tvIndex }
func (p *Progress) BeforeURL() string       { return p.beforeURL }
func (p *Progress) AfterURL() string        { return p.afterURL }
func (p *Progress) BeforeSource() vo.Source { return p.beforeSource }
func (p *Progress) AfterSource() vo.Source  { return p.afterSource }
func (p *Progress) CreatedAt() time.Time    { return p.createdAt }
func (p *Progress) UpdatedAt() time.Time    { return p.updatedAt }

func (p *Progress) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("progress ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("progress ID cannot be zero")
	}
	p.id = id
	return nil
}

// IsCompleted is true only when both photos are present.
func (p *Progress) IsCompleted() bool {
	return p.beforeURL != "" && p.afterURL != ""
}

func (p *Progress) Has(t vo.PhotoType) bool {
	if t == vo.TypeAfter {
		return p.afterURL != ""
	}
	return p.beforeURL != ""
}

// SetPhoto stores a photo reference. After photos must come from the camera.
func (p *Progress) SetPhoto(t vo.PhotoType, url string, source vo.Source) error {
	if !t.IsValid() {
		return fmt.Errorf("invalid photo type: %s", t)
	}
	if url == "" {
		return fmt.Errorf("photo reference is required")
	}
	if !source.AllowedFor(t) {
		if t == vo.TypeAfter {
			return ErrAfterPhotoNotFromCamera
		}
		return fmt.Errorf("invalid photo source: %s", source)
	}

	if t == vo.TypeAfter {
		p.afterURL, p.afterSource = url, source
	} else {
		p.beforeURL, p.beforeSource = url, source
	}
	p.updatedAt = time.Now().UTC()
	return nil
}

// ClearPhoto removes a photo reference and its source.
func (p *Progress) ClearPhoto(t vo.PhotoType) {
	if t == vo.TypeAfter {
		p.afterURL, p.afterSource = "", ""
	} else {
		p.beforeURL, p.beforeSource = "", ""
	}
	p.updatedAt = time.Now().UTC()
}
