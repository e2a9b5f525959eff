package models

import "time"

const (
	RoleFarmer = "farmer"
	RoleBuyer  = "buyer"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FullName     string `gorm:"size:100;not null" json:"fullName"`
	Role         string `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
