package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `gorm:"index" json:"category"`
	Available   bool    `gorm:"default:true" json:"available"`

	// image stored as BLOB, not serialized in JSON
	Image     []byte `gorm:"type:blob" json:"-"`
	ImageType string `json:"-"` // e.g. "image/jpeg"
	ImageSize int64  `json:"-"`
}
