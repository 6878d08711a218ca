package entity

import (
	"gorm.io/gorm"
)

// DailyItemQuantity records how much of an item the kitchen prepared on a
// given date. Compared against ordered quantities for the wastage report.
type DailyItemQuantity struct {
	gorm.Model
	ItemName         string `gorm:"index" json:"item_name"`
	QuantityPrepared int    `json:"quantity_prepared"`
	Date             string `gorm:"index" json:"date"` // YYYY-MM-DD
}
