package controllers

import (
	"errors"
	"strconv"

	"github.com/gowthamlakshman94/Canteen-Automation-System/pkg/resp"
	"github.com/gowthamlakshman94/Canteen-Automation-System/services"
	"github.com/gowthamlakshman94/Canteen-Automation-System/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// POST /submitOrder
func (oc *OrderController) Submit(c *gin.Context) {
	var req services.SubmitOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid order data")
		return
	}

	if err := oc.Service.Submit(&req); err != nil {
		if errors.Is(err, services.ErrUnknownEmail) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"message": "Order submitted successfully", "orderId": req.OrderID})
}

// GET /api/orders
func (oc *OrderController) List(c *gin.Context) {
	lines, err := oc.Service.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, lines)
}

type updateDeliveryReq struct {
	OrderID   int64  `json:"order_id" binding:"required"`
	ItemName  string `json:"item_name" binding:"required"`
	Delivered *bool  `json:"delivered" binding:"required"`
}

// POST /api/updateDeliveryStatus
func (oc *OrderController) UpdateDeliveryStatus(c *gin.Context) {
	var req updateDeliveryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid data")
		return
	}

	err := oc.Service.UpdateDeliveryStatus(req.OrderID, req.ItemName, *req.Delivered)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "Item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": true, "message": "Delivery status updated successfully"})
}

// GET /api/order/:orderId
func (oc *OrderController) Get(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "Invalid order id")
		return
	}

	order, err := oc.Service.Get(orderID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "Order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/orders/latest?email=
func (oc *OrderController) Latest(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		resp.BadRequest(c, "Email is required")
		return
	}

	order, err := oc.Service.Latest(email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "No orders for this email")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/orders/mine
func (oc *OrderController) Mine(c *gin.Context) {
	email := utils.CurrentEmail(c)
	if email == "" {
		resp.Unauthorized(c, "not logged in")
		return
	}

	order, err := oc.Service.Latest(email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "No orders for this email")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /checkOrder/:orderId
func (oc *OrderController) Check(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "Invalid order id")
		return
	}

	exists, err := oc.Service.Exists(orderID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"exists": exists})
}
