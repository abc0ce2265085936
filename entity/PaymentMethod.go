package entity

import (
	"gorm.io/gorm"
)

type PaymentMethod struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;size:50" json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}
