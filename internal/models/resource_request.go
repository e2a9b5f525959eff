package models

import "time"

type ResourceRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ResourceID uint     `gorm:"index;not null" json:"resourceId"`
	Resource   Resource `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	RequesterID uint `gorm:"index;not null" json:"requesterId"`
	Requester   User `gorm:"foreignKey:RequesterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Owner is denormalized from the resource at creation time so that
	// owner-side listing never has to walk through the resource.
	OwnerID uint `gorm:"index;not null" json:"ownerId"`

	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	Status      string    `gorm:"size:20;default:'pending';index" json:"status"`
	OfferAmount float64   `gorm:"not null" json:"offerAmount"`
	Message     string    `gorm:"size:500" json:"message"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
