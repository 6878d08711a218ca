package services

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/gowthamlakshman94/Canteen-Automation-System/entity"
	"github.com/gowthamlakshman94/Canteen-Automation-System/repository"
	"gorm.io/gorm"
)

var (
	ErrUnknownEmail = errors.New("unknown user email")
	ErrNotFound     = errors.New("not found")
)

type OrderService struct {
	Repo   *repository.OrderRepository
	Users  *repository.UserRepository
	Mailer *Mailer // nil disables confirmation mail
}

func NewOrderService(repo *repository.OrderRepository, users *repository.UserRepository, mailer *Mailer) *OrderService {
	return &OrderService{Repo: repo, Users: users, Mailer: mailer}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ItemName  string  `json:"itemName" binding:"required"`
	Price     float64 `json:"price" binding:"min=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Delivered bool    `json:"delivered"`
}

type SubmitOrderReq struct {
	OrderID   int64         `json:"orderId" binding:"required"`
	UserEmail string        `json:"userEmail" binding:"required"`
	Items     []OrderItemIn `json:"items" binding:"required,min=1"`
}

// Submit persists every line of the order in one transaction and, after
// that succeeds, kicks off the confirmation mail without waiting on it.
func (s *OrderService) Submit(req *SubmitOrderReq) error {
	if req.UserEmail == "" || req.UserEmail == "unknown" {
		return ErrUnknownEmail
	}
	count, err := s.Users.CountByEmail(req.UserEmail)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrUnknownEmail
	}

	// one shared creation timestamp across the order's lines
	now := time.Now()
	lines := make([]entity.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, entity.OrderLine{
			Model:     gorm.Model{CreatedAt: now, UpdatedAt: now},
			OrderID:   req.OrderID,
			UserEmail: req.UserEmail,
			ItemName:  it.ItemName,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Delivered: it.Delivered,
		})
	}

	if err := s.Repo.CreateLines(lines); err != nil {
		return err
	}

	if s.Mailer != nil {
		go func() {
			if err := s.Mailer.SendOrderConfirmation(req.UserEmail, req.OrderID, lines, now); err != nil {
				log.Printf("order %d: confirmation mail failed: %v", req.OrderID, err)
			}
		}()
	}
	return nil
}

func (s *OrderService) ListAll() ([]entity.OrderLine, error) {
	return s.Repo.ListAll()
}

func (s *OrderService) UpdateDeliveryStatus(orderID int64, itemName string, delivered bool) error {
	affected, err := s.Repo.UpdateDelivered(orderID, itemName, delivered)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type OrderLineOut struct {
	ItemName  string  `json:"itemName"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Delivered bool    `json:"delivered"`
}

type OrderDetail struct {
	OrderID   int64          `json:"orderId"`
	UserEmail string         `json:"userEmail"`
	CreatedAt time.Time      `json:"createdAt"`
	Items     []OrderLineOut `json:"items"`
	Total     float64        `json:"total"`
}

// Get rebuilds an order from its lines: header fields from the first row,
// total recomputed by summation.
func (s *OrderService) Get(orderID int64) (*OrderDetail, error) {
	lines, err := s.Repo.FindByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNotFound
	}

	out := &OrderDetail{
		OrderID:   orderID,
		UserEmail: lines[0].UserEmail,
		CreatedAt: lines[0].CreatedAt,
		Items:     make([]OrderLineOut, 0, len(lines)),
	}
	total := 0.0
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
		out.Items = append(out.Items, OrderLineOut{
			ItemName:  l.ItemName,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Delivered: l.Delivered,
		})
	}
	out.Total = math.Round(total*100) / 100
	return out, nil
}

func (s *OrderService) Latest(email string) (*OrderDetail, error) {
	orderID, err := s.Repo.LatestOrderID(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(orderID)
}

func (s *OrderService) Exists(orderID int64) (bool, error) {
	return s.Repo.Exists(orderID)
}
