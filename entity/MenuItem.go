package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `json:"name"`
	Emoji       string  `json:"emoji"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`

	// preload only when a transaction detail needs item names
	TransactionItems []TransactionItem `json:"-"`
}
