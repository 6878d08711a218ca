package routes

import (
	"github.com/gowthamlakshman94/Canteen-Automation-System/configs"
	"github.com/gowthamlakshman94/Canteen-Automation-System/controllers"
	"github.com/gowthamlakshman94/Canteen-Automation-System/middlewares"
	"github.com/gowthamlakshman94/Canteen-Automation-System/pkg/cache"
	"github.com/gowthamlakshman94/Canteen-Automation-System/repository"
	"github.com/gowthamlakshman94/Canteen-Automation-System/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, metricsCache *cache.Cache) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	mailer := services.NewMailer(cfg)
	orderSvc := services.NewOrderService(orderRepo, userRepo, mailer)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	metricsSvc := services.NewMetricsService(reportRepo)
	forecastSvc := services.NewForecastService(reportRepo, cfg)

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc)
	authCtrl := controllers.NewAuthController(authSvc, int(cfg.JWTTTL.Seconds()))
	menuCtrl := controllers.NewMenuController(menuSvc)
	metricsCtrl := controllers.NewMetricsController(metricsSvc, metricsCache)
	forecastCtrl := controllers.NewForecastController(forecastSvc)

	staffOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "staff")
	authRequired := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth
	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)
	r.GET("/me", authRequired, authCtrl.Me)

	// Orders
	r.POST("/submitOrder", orderCtrl.Submit)
	r.GET("/api/orders", orderCtrl.List)
	r.GET("/api/order/:orderId", orderCtrl.Get)
	r.GET("/api/orders/latest", orderCtrl.Latest)
	r.GET("/api/orders/mine", authRequired, orderCtrl.Mine)
	r.GET("/checkOrder/:orderId", orderCtrl.Check)
	r.POST("/api/updateDeliveryStatus", staffOnly, orderCtrl.UpdateDeliveryStatus)

	// Menu
	r.GET("/api/menu", menuCtrl.List)
	r.GET("/api/menu/:id/image", menuCtrl.Image)
	r.POST("/api/menu", staffOnly, menuCtrl.Create)
	r.PATCH("/api/menu/:id/availability", staffOnly, menuCtrl.UpdateAvailability)

	// Reports
	r.GET("/api/dailyMetrics", metricsCtrl.Daily)
	r.GET("/api/itemMetrics", metricsCtrl.Items)
	r.GET("/api/seasonalData", metricsCtrl.Seasonal)
	r.POST("/daily-item", staffOnly, metricsCtrl.RecordPrepared)
	r.GET("/daily-wastage", metricsCtrl.Wastage)

	// Forecast
	r.GET("/api/forecast", forecastCtrl.Forecast)
}
