package entity

import (
	"gorm.io/gorm"
)

// OrderLine is one item row of a submitted order. An order has no header
// table: lines sharing an OrderID form the order, and the total is always
// recomputed as Σ price×quantity over those lines.
type OrderLine struct {
	gorm.Model
	OrderID   int64   `gorm:"index;not null" json:"orderId"`
	UserEmail string  `gorm:"index" json:"userEmail"`
	ItemName  string  `json:"itemName"`
	Price     float64 `json:"price"` // unit price at time of order
	Quantity  int     `json:"quantity"`
	Delivered bool    `gorm:"default:false" json:"delivered"`
}

// legacy table name from the original deployment
func (OrderLine) TableName() string { return "orders" }
