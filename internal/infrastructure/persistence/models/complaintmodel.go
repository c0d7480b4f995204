package models

type ComplaintModel struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"size:200"`
	Email         string  `gorm:"size:320"`
	Subject       string  `gorm:"size:200;not null"`
	Body          string  `gorm:"type:text;not null"`
	IsNew         bool    `gorm:"not null;default:true;index"`
	AttachmentURL *string `gorm:"size:500"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt     int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: no foreign key constraints or associations. The attachment
	// blob relationship is managed by application logic.
}

func (ComplaintModel) TableName() string {
	return "complaints"
}
