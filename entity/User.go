package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Contact  string `json:"contact"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Role     string `gorm:"not null;default:customer" json:"role"`
}
