package models

import "time"

const (
	CropStatusAvailable = "available"
	CropStatusSold      = "sold"
	CropStatusReserved  = "reserved"
)

type Crop struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	FarmerID uint `gorm:"index;not null" json:"farmerId"`
	Farmer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Quantity    float64 `gorm:"not null" json:"quantity"`
	Unit        string  `gorm:"size:30;not null" json:"unit"`
	Price       float64 `gorm:"not null;index" json:"price"`
	Latitude    float64 `gorm:"not null" json:"-"`
	Longitude   float64 `gorm:"not null" json:"-"`
	Description string  `gorm:"size:500" json:"description"`
	Status      string  `gorm:"size:20;default:'available';index" json:"status"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
