package configs

import (
	"fmt"
	"time"

	"github.com/gowthamlakshman94/Canteen-Automation-System/entity"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "mysql":
		database, err = gorm.Open(mysql.Open(cfg.DBSource), &gorm.Config{})
	case "sqlite":
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
	if err != nil {
		return fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}

	// bound the pool; excess requests queue on the pool
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.OrderLine{},
		&entity.DailyItemQuantity{},
	)
}
