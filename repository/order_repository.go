package repository

import (
	"github.com/gowthamlakshman94/Canteen-Automation-System/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateLines inserts every line of an order as one bulk statement inside
// a transaction, so a failure leaves no dangling lines for the order id.
func (r *OrderRepository) CreateLines(lines []entity.OrderLine) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&lines).Error
	})
}

func (r *OrderRepository) ListAll() ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.DB.Order("created_at DESC, id DESC").Find(&lines).Error
	return lines, err
}

func (r *OrderRepository) FindByOrderID(orderID int64) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&lines).Error
	return lines, err
}

// LatestOrderID returns the most recent order id for an email, or
// gorm.ErrRecordNotFound.
func (r *OrderRepository) LatestOrderID(email string) (int64, error) {
	var line entity.OrderLine
	err := r.DB.Select("order_id").
		Where("user_email = ?", email).
		Order("created_at DESC, order_id DESC").
		First(&line).Error
	if err != nil {
		return 0, err
	}
	return line.OrderID, nil
}

func (r *OrderRepository) Exists(orderID int64) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.OrderLine{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateDelivered flips the delivered flag on the matching line(s) and
// reports how many rows were touched.
func (r *OrderRepository) UpdateDelivered(orderID int64, itemName string, delivered bool) (int64, error) {
	res := r.DB.Model(&entity.OrderLine{}).
		Where("order_id = ? AND item_name = ?", orderID, itemName).
		Update("delivered", delivered)
	return res.RowsAffected, res.Error
}
