package models

import "time"

const (
	ResourceTypeEquipment = "equipment"
	ResourceTypeTool      = "tool"
	ResourceTypeOther     = "other"
)

const (
	AvailabilityAvailable   = "available"
	AvailabilityInUse       = "in_use"
	AvailabilityMaintenance = "maintenance"
)

type Resource struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `gorm:"index;not null" json:"ownerId"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name         string  `gorm:"size:100;not null" json:"name"`
	Type         string  `gorm:"size:20;not null;index" json:"type"`
	Availability string  `gorm:"size:20;default:'available';index" json:"availability"`
	PricePerDay  float64 `gorm:"not null" json:"pricePerDay"`
	Description  string  `gorm:"size:500" json:"description"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
