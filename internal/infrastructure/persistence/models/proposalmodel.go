package models

import "gorm.io/datatypes"

type ScheduleProposalModel struct {
	ID               uint           `gorm:"primaryKey"`
	BookingID        uint           `gorm:"not null;index:idx_schedule_proposals_booking,priority:1"`
	InstallerID      uint           `gorm:"not null;index"`
	ProposedBy       string         `gorm:"size:20;not null"`
	ProposerUserID   uint           `gorm:"not null"`
	ProposedDate     datatypes.Date `gorm:"type:date;not null"`
	ProposedTimeSlot string         `gorm:"size:20;not null"`
	Status           string         `gorm:"size:20;not null;index"`
	ProposalMessage  string         `gorm:"type:text"`
	ResponseMessage  string         `gorm:"type:text"`
	ProposedAt       int64          `gorm:"not null;index:idx_schedule_proposals_booking,priority:2"`
	RespondedAt      *int64
}

func (ScheduleProposalModel) TableName() string {
	return "schedule_proposals"
}
