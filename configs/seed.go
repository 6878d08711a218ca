package configs

import (
	"log"

	"github.com/gowthamlakshman94/Canteen-Automation-System/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedStaff creates the first staff account from env, once.
func SeedStaff() error {
	db := DB()
	email := getEnv("STAFF_EMAIL", "")
	pass := getEnv("STAFF_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding staff: missing STAFF_EMAIL/STAFF_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("staff already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	staff := entity.User{
		Name:     "Canteen Staff",
		Email:    email,
		Password: string(hash),
		Role:     "staff",
	}
	return db.Create(&staff).Error
}
