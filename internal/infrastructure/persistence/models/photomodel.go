package models

type PhotoProgressModel struct {
	ID                uint   `gorm:"primaryKey"`
	BookingID         uint   `gorm:"not null;uniqueIndex:idx_photo_progress_booking_tv,priority:1"`
	InstallerID       uint   `gorm:"not null;index"`
	TVIndex           int    `gorm:"column:tv_index;not null;uniqueIndex:idx_photo_progress_booking_tv,priority:2"`
	BeforePhotoURL    string `gorm:"type:mediumtext"`
	AfterPhotoURL     string `gorm:"type:mediumtext"`
	BeforePhotoSource string `gorm:"size:10"`
	AfterPhotoSource  string `gorm:"size:10"`
	IsCompleted       bool   `gorm:"not null;default:false"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PhotoProgressModel) TableName() string {
	return "photo_progress"
}

// PhotoSessionModel persists the capture cursor of a booking.
type PhotoSessionModel struct {
	ID              uint   `gorm:"primaryKey"`
	BookingID       uint   `gorm:"not null;uniqueIndex"`
	InstallerID     uint   `gorm:"not null"`
	TVCount         int    `gorm:"column:tv_count;not null"`
	WorkflowStage   string `gorm:"size:10;not null"`
	CursorTVIndex   int    `gorm:"column:cursor_tv_index;not null;default:0"`
	CursorPhotoType string `gorm:"size:10;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PhotoSessionModel) TableName() string {
	return "photo_sessions"
}
