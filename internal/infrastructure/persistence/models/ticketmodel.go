package models

type TicketModel struct {
	ID             uint   `gorm:"primaryKey"`
	Number         string `gorm:"uniqueIndex;size:20;not null"`
	Subject        string `gorm:"size:200;not null"`
	Body           string `gorm:"type:text;not null"`
	Category       string `gorm:"size:30;not null;index"`
	Priority       string `gorm:"size:10;not null;index"`
	Status         string `gorm:"size:20;not null;index"`
	RequesterID    uint   `gorm:"not null;index"`
	RequesterEmail string `gorm:"size:255"`
	RequesterName  string `gorm:"size:100"`
	AssignedTo     *uint  `gorm:"index"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt       *int64

	// No foreign keys; the repository deletes the thread with its ticket.
}

func (TicketModel) TableName() string {
	return "support_tickets"
}

type TicketMessageModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;index"`
	AuthorID     uint   `gorm:"not null"`
	Body         string `gorm:"type:text;not null"`
	IsAdminReply bool   `gorm:"not null;default:false"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketMessageModel) TableName() string {
	return "support_ticket_messages"
}
