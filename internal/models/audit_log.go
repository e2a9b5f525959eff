package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   *uint  `gorm:"index" json:"user_id"`
	Action   string `gorm:"size:60;not null;index" json:"action"`
	Entity   string `gorm:"size:30;not null" json:"entity"`
	EntityID *uint  `json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
