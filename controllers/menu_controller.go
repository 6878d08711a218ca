package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gowthamlakshman94/Canteen-Automation-System/entity"
	"github.com/gowthamlakshman94/Canteen-Automation-System/pkg/price"
	"github.com/gowthamlakshman94/Canteen-Automation-System/pkg/resp"
	"github.com/gowthamlakshman94/Canteen-Automation-System/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// 5MB is plenty for a food photo
const maxImageSize = 5 << 20

// POST /api/menu (multipart: name, description, price, category, image)
func (mc *MenuController) Create(c *gin.Context) {
	var req struct {
		Name        string `form:"name" binding:"required"`
		Description string `form:"description"`
		Price       string `form:"price" binding:"required"`
		Category    string `form:"category"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := price.Parse(req.Price)
	if err != nil || p < 0 {
		resp.BadRequest(c, "invalid price")
		return
	}

	item := entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       p,
		Category:    req.Category,
		Available:   true,
	}

	if file, err := c.FormFile("image"); err == nil {
		if file.Size > maxImageSize {
			resp.BadRequest(c, "image too large")
			return
		}
		f, err := file.Open()
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		contentType := file.Header.Get("Content-Type")
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}
		item.Image = data
		item.ImageType = contentType
		item.ImageSize = int64(len(data))
	}

	if err := mc.Service.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": item.ID})
}

type menuItemOut struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

// GET /api/menu?category=
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Service.ListAvailable(c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]menuItemOut, 0, len(items))
	for _, it := range items {
		imageURL := ""
		if it.ImageSize > 0 {
			imageURL = fmt.Sprintf("/api/menu/%d/image", it.ID)
		}
		out = append(out, menuItemOut{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Category:    it.Category,
			ImageURL:    imageURL,
		})
	}
	resp.OK(c, gin.H{"items": out})
}

// GET /api/menu/:id/image
func (mc *MenuController) Image(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}

	item, err := mc.Service.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if len(item.Image) == 0 {
		resp.NotFound(c, "menu item has no image")
		return
	}
	c.Data(http.StatusOK, item.ImageType, item.Image)
}

// PATCH /api/menu/:id/availability
func (mc *MenuController) UpdateAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}

	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := mc.Service.SetAvailability(uint(id), *req.Available); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": true})
}
