package entity

import (
	"gorm.io/gorm"
)

// Transaction is immutable after checkout: no update path exists, only delete.
type Transaction struct {
	gorm.Model
	Reference       string  `gorm:"uniqueIndex;size:64" json:"reference"`
	TransactionDate string  `gorm:"size:10" json:"transactionDate"`
	TransactionTime string  `gorm:"size:8" json:"transactionTime"`
	TotalAmount     float64 `json:"totalAmount"`
	PaymentMethod   string  `gorm:"size:50;default:cash" json:"paymentMethod"`
	Status          string  `gorm:"size:20;default:completed" json:"status"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Items []TransactionItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
