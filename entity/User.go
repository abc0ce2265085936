package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Role     string `gorm:"not null;default:customer" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	Transactions []Transaction `json:"-"`
}
