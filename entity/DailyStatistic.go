package entity

import (
	"gorm.io/gorm"
)

// DailyStatistic holds the running totals for one calendar day.
// StatDate is unique: every checkout lands on the same row via an
// additive upsert, never a read-then-write from the service tier.
type DailyStatistic struct {
	gorm.Model
	StatDate       string  `gorm:"uniqueIndex;size:10" json:"statDate"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalOrders    int     `json:"totalOrders"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalSmiles    int     `json:"totalSmiles"`
}
