package models

import "gorm.io/datatypes"

type BookingModel struct {
	ID                 uint            `gorm:"primaryKey"`
	CustomerID         uint            `gorm:"not null;index"`
	InstallerID        uint            `gorm:"not null;index"`
	TVCount            int             `gorm:"column:tv_count;not null;default:1"`
	PhotoWorkflowStage string          `gorm:"size:10;not null;default:both"`
	Status             string          `gorm:"size:20;not null;index"`
	ScheduledDate      *datatypes.Date `gorm:"type:date"`
	ScheduledTimeSlot  string          `gorm:"size:20"`
	PhotosSubmittedAt  *int64
	CreatedAt          int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (BookingModel) TableName() string {
	return "bookings"
}
