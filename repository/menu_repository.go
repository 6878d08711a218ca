package repository

import (
	"github.com/gowthamlakshman94/Canteen-Automation-System/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

// FindAvailable lists sellable items without pulling the image blobs.
func (r *MenuRepository) FindAvailable(category string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	q := r.DB.
		Select("id, created_at, updated_at, name, description, price, category, available, image_type, image_size").
		Where("available = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) UpdateAvailability(id uint, available bool) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("available", available)
	return res.RowsAffected, res.Error
}
