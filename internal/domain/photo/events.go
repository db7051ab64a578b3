package photo

import "github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"

const EventTypePhotosSubmitted = "installation.photos_submitted"

// PhotosSubmittedEvent is raised once a complete photo set is accepted.
type PhotosSubmittedEvent struct {
	events.BaseEvent
	InstallerID  uint   `json:"installer_id"`
	BatchID      string `json:"batch_id"`
	TVCount      int    `json:"tv_count"`
	QualityStars int    `json:"quality_stars"`
}

func NewPhotosSubmittedEvent(bookingID, installerID uint, batchID string, tvCount, stars int) PhotosSubmittedEvent {
	return PhotosSubmittedEvent{
		BaseEvent:    events.NewBaseEvent(bookingID, EventTypePhotosSubmitted),
		InstallerID:  installerID,
		BatchID:      batchID,
		TVCount:      tvCount,
		QualityStars: stars,
	}
}
