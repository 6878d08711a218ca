package main

import (
	"context"
	"log"

	"github.com/gowthamlakshman94/Canteen-Automation-System/configs"
	"github.com/gowthamlakshman94/Canteen-Automation-System/pkg/cache"
	"github.com/gowthamlakshman94/Canteen-Automation-System/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := configs.SeedStaff(); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}

	// optional metrics cache
	metricsCache := cache.New(cfg.RedisAddr)
	if err := metricsCache.Ping(context.Background()); err != nil {
		log.Printf("redis unreachable, metrics cache disabled: %v", err)
		metricsCache = nil
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg, metricsCache)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
