package controllers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gowthamlakshman94/Canteen-Automation-System/pkg/cache"
	"github.com/gowthamlakshman94/Canteen-Automation-System/pkg/resp"
	"github.com/gowthamlakshman94/Canteen-Automation-System/services"

	"github.com/gin-gonic/gin"
)

type MetricsController struct {
	Service *services.MetricsService
	Cache   *cache.Cache
}

func NewMetricsController(service *services.MetricsService, c *cache.Cache) *MetricsController {
	return &MetricsController{Service: service, Cache: c}
}

const (
	dailyCacheTTL    = 30 * time.Second
	seasonalCacheTTL = 5 * time.Minute
)

// GET /api/dailyMetrics
func (mc *MetricsController) Daily(c *gin.Context) {
	key := "metrics:daily:" + time.Now().Format("2006-01-02")
	if b, ok := mc.Cache.Get(c.Request.Context(), key); ok {
		c.Data(200, "application/json", b)
		return
	}

	m, err := mc.Service.Daily(time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if b, err := json.Marshal(m); err == nil {
		mc.Cache.Set(c.Request.Context(), key, b, dailyCacheTTL)
	}
	resp.OK(c, m)
}

// GET /api/itemMetrics?from=&to=
func (mc *MetricsController) Items(c *gin.Context) {
	metrics, err := mc.Service.Items(c.Query("from"), c.Query("to"))
	if err != nil {
		if errors.Is(err, services.ErrBadDate) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"metrics": metrics})
}

// POST /daily-item
func (mc *MetricsController) RecordPrepared(c *gin.Context) {
	var req services.PreparedIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "All fields are required.")
		return
	}

	id, err := mc.Service.RecordPrepared(&req)
	if err != nil {
		if errors.Is(err, services.ErrBadDate) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Data inserted successfully.", "id": id})
}

// GET /daily-wastage?date=
func (mc *MetricsController) Wastage(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		resp.BadRequest(c, "Date is required.")
		return
	}

	rows, err := mc.Service.Wastage(date)
	if err != nil {
		if errors.Is(err, services.ErrBadDate) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /api/seasonalData
func (mc *MetricsController) Seasonal(c *gin.Context) {
	key := "metrics:seasonal:" + time.Now().Format("2006-01")
	if b, ok := mc.Cache.Get(c.Request.Context(), key); ok {
		c.Data(200, "application/json", b)
		return
	}

	data, err := mc.Service.Seasonal(time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if b, err := json.Marshal(data); err == nil {
		mc.Cache.Set(c.Request.Context(), key, b, seasonalCacheTTL)
	}
	resp.OK(c, data)
}
