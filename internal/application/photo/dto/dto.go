package dto

import (
	"time"

	"github.com/tradesbook-ie/tradesbook/internal/domain/photo"
	"github.com/tradesbook-ie/tradesbook/internal/shared/mapper"
)

type ProgressDTO struct {
	ID                uint   `json:"id"`
	BookingID         uint   `json:"booking_id"`
	InstallerID       uint   `json:"installer_id"`
	TVIndex           int    `json:"tv_index"`
	BeforePhotoURL    string `json:"before_photo_url,omitempty"`
	AfterPhotoURL     string `json:"after_photo_url,omitempty"`
	BeforePhotoSource string `json:"before_photo_source,omitempty"`
	AfterPhotoSource  string `json:"after_photo_source,omitempty"`
	IsCompleted       bool   `json:"is_completed"`
}

type CursorDTO struct {
	TVIndex   int    `json:"tv_index"`
	PhotoType string `json:"photo_type"`
}

type MetricsDTO struct {
	TotalPhotosCompleted int     `json:"total_photos_completed"`
	TotalPhotosNeeded    int     `json:"total_photos_needed"`
	CompletionRate       float64 `json:"completion_rate"`
	QualityStars         int     `json:"quality_stars"`
	ReadyToComplete      bool    `json:"ready_to_complete"`
}

type PhotoProgressDTO struct {
	BookingID         uint          `json:"booking_id"`
	TVCount           int           `json:"tv_count"`
	WorkflowStage     string        `json:"photo_workflow_stage"`
	Cursor            CursorDTO     `json:"cursor"`
	Progress          []ProgressDTO `json:"progress"`
	Metrics           MetricsDTO    `json:"metrics"`
	PhotosSubmittedAt *time.Time    `json:"photos_submitted_at,omitempty"`
}

type SubmissionDTO struct {
	BatchID string            `json:"batch_id"`
	Result  *PhotoProgressDTO `json:"result"`
}

func ToProgressDTO(p *photo.Progress) ProgressDTO {
	return ProgressDTO{
		ID:                p.ID(),
		BookingID:         p.BookingID(),
		InstallerID:       p.InstallerID(),
		TVIndex:           p.TVIndex(),
		BeforePhotoURL:    p.BeforeURL(),
		AfterPhotoURL:     p.AfterURL(),
		BeforePhotoSource: p.BeforeSource().String(),
		AfterPhotoSource:  p.AfterSource().String(),
		IsCompleted:       p.IsCompleted(),
	}
}

func ToMetricsDTO(m photo.Metrics) MetricsDTO {
	return MetricsDTO{
		TotalPhotosCompleted: m.Completed,
		TotalPhotosNeeded:    m.Needed,
		CompletionRate:       m.CompletionRate,
		QualityStars:         m.QualityStars,
		ReadyToComplete:      m.ReadyToComplete,
	}
}

func ToPhotoProgressDTO(t *photo.Tracker, submittedAt *time.Time) *PhotoProgressDTO {
	s := t.Session()
	return &PhotoProgressDTO{
		BookingID:     s.BookingID(),
		TVCount:       s.TVCount(),
		WorkflowStage: s.Stage().String(),
		Cursor: CursorDTO{
			TVIndex:   s.Cursor().TVIndex,
			PhotoType: s.Cursor().PhotoType.String(),
		},
		Progress:          mapper.MapSlice(t.Rows(), ToProgressDTO),
		Metrics:           ToMetricsDTO(t.Metrics()),
		PhotosSubmittedAt: submittedAt,
	}
}
