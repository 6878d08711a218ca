package controllers

import (
	"errors"
	"strconv"

	"github.com/gowthamlakshman94/Canteen-Automation-System/pkg/resp"
	"github.com/gowthamlakshman94/Canteen-Automation-System/services"

	"github.com/gin-gonic/gin"
)

type ForecastController struct {
	Service *services.ForecastService
}

func NewForecastController(service *services.ForecastService) *ForecastController {
	return &ForecastController{Service: service}
}

// GET /api/forecast?days=
func (fc *ForecastController) Forecast(c *gin.Context) {
	days := 14
	if q := c.Query("days"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 || n > 90 {
			resp.BadRequest(c, "days must be between 1 and 90")
			return
		}
		days = n
	}

	result, err := fc.Service.Forecast(c.Request.Context(), days)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientHistory) {
			resp.Unprocessable(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, result)
}
