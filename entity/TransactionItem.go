package entity

import (
	"gorm.io/gorm"
)

type TransactionItem struct {
	gorm.Model
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Subtotal     float64 `json:"subtotal"`

	TransactionID uint        `json:"transactionId"`
	Transaction   Transaction `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
