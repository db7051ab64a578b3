package photo

import (
	"fmt"
	"time"

	vo "github.com/tradesbook-ie/tradesbook/internal/domain/photo/valueobjects"
)

// Cursor is the next photo the installer is asked to take.
type Cursor struct {
	TVIndex   int
	PhotoType vo.PhotoType
}

// Session holds the capture cursor of a booking so reloads resume in place.
type Session struct {
	id          uint
	bookingID   uint
	installerID uint
	tvCount     int
	stage       vo.WorkflowStage
	cursor      Cursor
	updatedAt   time.Time
}

func NewSession(bookingID, installerID uint, tvCount int, stage vo.WorkflowStage) (*Session, error) {
	if bookingID == 0 {
		return nil, fmt.Errorf("booking ID is required")
	}
	if tvCount < 1 {
		return nil, fmt.Errorf("tv count must be at least 1")
	}
	if !stage.IsValid() {
		return nil, fmt.Errorf("invalid workflow stage: %s", stage)
	}
	return &Session{
		bookingID:   bookingID,
		installerID: installerID,
		tvCount:     tvCount,
		stage:       stage,
		cursor:      Cursor{TVIndex: 0, PhotoType: stage.FirstType()},
		updatedAt:   time.Now().UTC(),
	}, nil
}

func ReconstructSession(
	id, bookingID, installerID uint,
	tvCount int,
	stage vo.WorkflowStage,
	cursor Cursor,
	updatedAt time.Time,
) (*Session, error) {
	if id == 0 {
		return nil, fmt.Errorf("session ID cannot be zero")
	}
	if !stage.IsValid() {
		return nil, fmt.Errorf("invalid workflow stage: %s", stage)
	}
	if cursor.TVIndex < 0 || cursor.TVIndex >= tvCount || !cursor.PhotoType.IsValid() {
		cursor = Cursor{TVIndex: 0, PhotoType: stage.FirstType()}
	}
	return &Session{
		id:          id,
		bookingID:   bookingID,
		installerID: installerID,
		tvCount:     tvCount,
		stage:       stage,
		cursor:      cursor,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Session) ID() uint                { return s.id }
func (s *Session) BookingID() uint         { return s.bookingID }
func (s *Session) InstallerID() uint       { return s.installerID }
func (s *Session) TVCount() int            { return s.tvCount }
func (s *Session) Stage() vo.WorkflowStage { return s.stage }
func (s *Session) Cursor() Cursor          { return s.cursor }
func (s *Session) UpdatedAt() time.Time    { return s.updatedAt }

func (s *Session) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("session ID is already set")
	}
	s.id = id
	return nil
}

// advanceFrom moves the cursor past a photo just captured at (tvIndex, t).
// With stage both, before leads to after on the same TV and after leads to
// the next TV's before. Single-type stages walk TV by TV. The cursor never
// wraps past the last TV.
func (s *Session) advanceFrom(tvIndex int, t vo.PhotoType) {
	next := Cursor{TVIndex: tvIndex, PhotoType: t}
	last := s.tvCount - 1

	switch {
	case s.stage == vo.StageBoth && t == vo.TypeBefore:
		next.PhotoType = vo.TypeAfter
	case tvIndex < last:
		next = Cursor{TVIndex: tvIndex + 1, PhotoType: s.stage.FirstType()}
	}

	s.cursor = next
	s.updatedAt = time.Now().UTC()
}
