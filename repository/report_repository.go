package repository

import (
	"time"

	"github.com/gowthamlakshman94/Canteen-Automation-System/entity"
	"gorm.io/gorm"
)

// ReportRepository serves the read-only aggregations derived from order
// lines, plus the prepared-quantity records behind the wastage report.
type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

type DailyMetrics struct {
	TotalSales  float64 `json:"totalSales"`
	TotalOrders int64   `json:"totalOrders"`
	TotalItems  int64   `json:"totalItems"`
}

func (r *ReportRepository) DailyMetrics(from, to time.Time) (*DailyMetrics, error) {
	var out DailyMetrics
	err := r.DB.Model(&entity.OrderLine{}).
		Select("COALESCE(SUM(price * quantity), 0) AS total_sales, COUNT(DISTINCT order_id) AS total_orders, COALESCE(SUM(quantity), 0) AS total_items").
		Where("created_at BETWEEN ? AND ?", from, to).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type ItemMetric struct {
	ItemName      string    `json:"item_name"`
	TotalSales    float64   `json:"totalSales"`
	TotalQuantity int64     `json:"totalQuantity"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ItemMetrics groups lines by item, highest revenue first. When both
// bounds are given the range is inclusive.
func (r *ReportRepository) ItemMetrics(from, to *time.Time) ([]ItemMetric, error) {
	q := r.DB.Model(&entity.OrderLine{}).
		Select("item_name, SUM(price * quantity) AS total_sales, SUM(quantity) AS total_quantity, MIN(created_at) AS created_at")
	if from != nil && to != nil {
		q = q.Where("created_at BETWEEN ? AND ?", *from, *to)
	}
	var out []ItemMetric
	err := q.Group("item_name").Order("total_sales DESC").Scan(&out).Error
	return out, err
}

func (r *ReportRepository) CreatePrepared(rec *entity.DailyItemQuantity) error {
	return r.DB.Create(rec).Error
}

func (r *ReportRepository) PreparedForDate(date string) ([]entity.DailyItemQuantity, error) {
	var recs []entity.DailyItemQuantity
	err := r.DB.Where("date = ?", date).Order("id ASC").Find(&recs).Error
	return recs, err
}

type ItemQuantity struct {
	ItemName string
	Quantity int64
}

// OrderedQuantities sums ordered quantity per item within the window.
func (r *ReportRepository) OrderedQuantities(from, to time.Time) ([]ItemQuantity, error) {
	var out []ItemQuantity
	err := r.DB.Model(&entity.OrderLine{}).
		Select("item_name, SUM(quantity) AS quantity").
		Where("created_at BETWEEN ? AND ?", from, to).
		Group("item_name").
		Scan(&out).Error
	return out, err
}

type LineSlim struct {
	ItemName  string
	Quantity  int
	CreatedAt time.Time
}

// AllLinesSlim feeds the seasonal bucketing, which runs in Go to stay
// portable across sqlite and mysql date functions.
func (r *ReportRepository) AllLinesSlim() ([]LineSlim, error) {
	var out []LineSlim
	err := r.DB.Model(&entity.OrderLine{}).
		Select("item_name, quantity, created_at").
		Order("id ASC").
		Scan(&out).Error
	return out, err
}

type RevenueRow struct {
	Price     float64
	Quantity  int
	CreatedAt time.Time
}

// DeliveredLines returns delivered lines oldest first, the raw material
// for the daily revenue series.
func (r *ReportRepository) DeliveredLines() ([]RevenueRow, error) {
	var out []RevenueRow
	err := r.DB.Model(&entity.OrderLine{}).
		Select("price, quantity, created_at").
		Where("delivered = ?", true).
		Order("created_at ASC").
		Scan(&out).Error
	return out, err
}
