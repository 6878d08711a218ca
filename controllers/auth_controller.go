package controllers

import (
	"errors"
	"net/http"

	"github.com/gowthamlakshman94/Canteen-Automation-System/pkg/resp"
	"github.com/gowthamlakshman94/Canteen-Automation-System/services"
	"github.com/gowthamlakshman94/Canteen-Automation-System/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Contact  string `json:"contact"`
	City     string `json:"city"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Service *services.AuthService
	TTL     int // cookie max age, seconds
}

func NewAuthController(service *services.AuthService, cookieTTL int) *AuthController {
	return &AuthController{Service: service, TTL: cookieTTL}
}

// POST /register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	_, err := a.Service.Register(req.Name, req.Email, req.Password, req.Contact, req.City, req.Address)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"success": true})
}

// POST /login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Service.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
		return
	}

	// cookie for the storefront, token in the body for API clients
	c.SetCookie("token", token, a.TTL, "/", "", false, true)
	c.SetCookie("userEmail", user.Email, a.TTL, "/", "", false, false)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// GET /me
func (a *AuthController) Me(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		resp.Unauthorized(c, "not logged in")
		return
	}

	user, err := a.Service.GetProfile(userID)
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}

	resp.OK(c, gin.H{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"contact": user.Contact,
		"city":    user.City,
		"address": user.Address,
		"role":    user.Role,
	})
}
