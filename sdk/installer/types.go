// Package installer provides a Go SDK for the installer side of the tradesbook
// photo workflow: camera acquisition, a local capture buffer and the photo
// progress API.
package installer

import "time"

// PhotoType is the slot a photo fills for one TV.
type PhotoType string

const (
	PhotoBefore PhotoType = "before"
	PhotoAfter  PhotoType = "after"
)

// Source records how a photo was obtained. After photos must come from the camera.
type Source string

const (
	SourceCamera Source = "camera"
	SourceUpload Source = "upload"
)

// WorkflowStage is the set of photos a booking requires per TV.
type WorkflowStage string

const (
	StageBefore WorkflowStage = "before"
	StageAfter  WorkflowStage = "after"
	StageBoth   WorkflowStage = "both"
)

// Progress is the stored photo state of one TV.
type Progress struct {
	ID                uint   `json:"id"`
	BookingID         uint   `json:"booking_id"`
	InstallerID       uint   `json:"installer_id"`
	TVIndex           int    `json:"tv_index"`
	BeforePhotoURL    string `json:"before_photo_url,omitempty"`
	AfterPhotoURL     string `json:"after_photo_url,omitempty"`
	BeforePhotoSource Source `json:"before_photo_source,omitempty"`
	AfterPhotoSource  Source `json:"after_photo_source,omitempty"`
	IsCompleted       bool   `json:"is_completed"`
}

// Cursor points at the next photo to capture.
type Cursor struct {
	TVIndex   int       `json:"tv_index"`
	PhotoType PhotoType `json:"photo_type"`
}

type Metrics struct {
	TotalPhotosCompleted int     `json:"total_photos_completed"`
	TotalPhotosNeeded    int     `json:"total_photos_needed"`
	CompletionRate       float64 `json:"completion_rate"`
	QualityStars         int     `json:"quality_stars"`
	ReadyToComplete      bool    `json:"ready_to_complete"`
}

// PhotoProgress is the server view of a booking's capture session.
type PhotoProgress struct {
	BookingID         uint          `json:"booking_id"`
	TVCount           int           `json:"tv_count"`
	WorkflowStage     WorkflowStage `json:"photo_workflow_stage"`
	Cursor            Cursor        `json:"cursor"`
	Progress          []Progress    `json:"progress"`
	Metrics           Metrics       `json:"metrics"`
	PhotosSubmittedAt *time.Time    `json:"photos_submitted_at,omitempty"`
}

// SubmittedPhoto is one TV's entry in a batch submission.
type SubmittedPhoto struct {
	TVIndex           int    `json:"tv_index"`
	BeforePhotoURL    string `json:"before_photo_url,omitempty"`
	BeforePhotoSource Source `json:"before_photo_source,omitempty"`
	AfterPhotoURL     string `json:"after_photo_url,omitempty"`
	AfterPhotoSource  Source `json:"after_photo_source,omitempty"`
}

// Submission is returned after a successful batch submission.
type Submission struct {
	BatchID string         `json:"batch_id"`
	Result  *PhotoProgress `json:"result"`
}

type capturePhotoRequest struct {
	TVIndex   int       `json:"tv_index"`
	PhotoType PhotoType `json:"photo_type"`
	Source    Source    `json:"source"`
	Image     string    `json:"image"`
}

type submitPhotosRequest struct {
	BookingID uint             `json:"booking_id"`
	Photos    []SubmittedPhoto `json:"photos"`
}

// apiResponse mirrors the server response envelope.
type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
	Message string    `json:"message,omitempty"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
