package installer

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUploadNotAllowed is returned for after photos picked from the gallery.
var ErrUploadNotAllowed = errors.New("after photos must be taken with the camera")

// CapturedPhoto is one photo ready to be stored.
type CapturedPhoto struct {
	TVIndex int
	Type    PhotoType
	Source  Source
	// Image is a data URL, see EncodeDataURL.
	Image string
}

// CaptureBuffer holds photos on the device until the batch is submitted. It
// follows the same cursor rules as the server so the installer is guided TV
// by TV while offline.
type CaptureBuffer struct {
	tvCount int
	stage   WorkflowStage
	cursor  Cursor
	photos  map[int]*SubmittedPhoto
}

func NewCaptureBuffer(tvCount int, stage WorkflowStage) (*CaptureBuffer, error) {
	if tvCount < 1 {
		return nil, fmt.Errorf("tv count must be at least 1")
	}
	switch stage {
	case StageBefore, StageAfter, StageBoth:
	default:
		return nil, fmt.Errorf("invalid workflow stage: %s", stage)
	}

	first := PhotoBefore
	if stage == StageAfter {
		first = PhotoAfter
	}
	return &CaptureBuffer{
		tvCount: tvCount,
		stage:   stage,
		cursor:  Cursor{TVIndex: 0, PhotoType: first},
		photos:  make(map[int]*SubmittedPhoto, tvCount),
	}, nil
}

// ResumeCaptureBuffer seeds a buffer from the server's progress so a session
// can continue on another device.
func ResumeCaptureBuffer(p *PhotoProgress) (*CaptureBuffer, error) {
	b, err := NewCaptureBuffer(p.TVCount, p.WorkflowStage)
	if err != nil {
		return nil, err
	}
	for _, row := range p.Progress {
		if row.TVIndex < 0 || row.TVIndex >= p.TVCount {
			continue
		}
		b.photos[row.TVIndex] = &SubmittedPhoto{
			TVIndex:           row.TVIndex,
			BeforePhotoURL:    row.BeforePhotoURL,
			BeforePhotoSource: row.BeforePhotoSource,
			AfterPhotoURL:     row.AfterPhotoURL,
			AfterPhotoSource:  row.AfterPhotoSource,
		}
	}
	b.cursor = p.Cursor
	return b, nil
}

func (b *CaptureBuffer) Cursor() Cursor { return b.cursor }

// Add stores p and advances the cursor.
func (b *CaptureBuffer) Add(p CapturedPhoto) error {
	if p.TVIndex < 0 || p.TVIndex >= b.tvCount {
		return fmt.Errorf("tv index %d out of range [0, %d)", p.TVIndex, b.tvCount)
	}
	if p.Source != SourceCamera && p.Source != SourceUpload {
		return fmt.Errorf("invalid photo source: %s", p.Source)
	}
	if p.Image == "" {
		return errors.New("image is required")
	}

	entry := b.entry(p.TVIndex)
	switch p.Type {
	case PhotoBefore:
		entry.BeforePhotoURL = p.Image
		entry.BeforePhotoSource = p.Source
	case PhotoAfter:
		if p.Source != SourceCamera {
			return ErrUploadNotAllowed
		}
		entry.AfterPhotoURL = p.Image
		entry.AfterPhotoSource = p.Source
	default:
		return fmt.Errorf("invalid photo type: %s", p.Type)
	}

	b.advance(p.TVIndex, p.Type)
	return nil
}

// Remove clears one slot. The cursor does not move.
func (b *CaptureBuffer) Remove(tvIndex int, photoType PhotoType) {
	entry, ok := b.photos[tvIndex]
	if !ok {
		return
	}
	switch photoType {
	case PhotoBefore:
		entry.BeforePhotoURL, entry.BeforePhotoSource = "", ""
	case PhotoAfter:
		entry.AfterPhotoURL, entry.AfterPhotoSource = "", ""
	}
}

// Ready reports whether every TV has the photos the stage requires.
func (b *CaptureBuffer) Ready() bool {
	for tv := 0; tv < b.tvCount; tv++ {
		entry, ok := b.photos[tv]
		if !ok {
			return false
		}
		if b.stage != StageAfter && entry.BeforePhotoURL == "" {
			return false
		}
		if b.stage != StageBefore && entry.AfterPhotoURL == "" {
			return false
		}
	}
	return true
}

// Photos returns the batch ordered by TV index.
func (b *CaptureBuffer) Photos() []SubmittedPhoto {
	out := make([]SubmittedPhoto, 0, len(b.photos))
	for _, entry := range b.photos {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TVIndex < out[j].TVIndex })
	return out
}

func (b *CaptureBuffer) entry(tvIndex int) *SubmittedPhoto {
	entry, ok := b.photos[tvIndex]
	if !ok {
		entry = &SubmittedPhoto{TVIndex: tvIndex}
		b.photos[tvIndex] = entry
	}
	return entry
}

func (b *CaptureBuffer) advance(tvIndex int, captured PhotoType) {
	if b.stage == StageBoth && captured == PhotoBefore {
		b.cursor = Cursor{TVIndex: tvIndex, PhotoType: PhotoAfter}
		return
	}
	if tvIndex+1 >= b.tvCount {
		b.cursor = Cursor{TVIndex: tvIndex, PhotoType: captured}
		return
	}
	next := PhotoBefore
	if b.stage == StageAfter {
		next = PhotoAfter
	}
	b.cursor = Cursor{TVIndex: tvIndex + 1, PhotoType: next}
}
