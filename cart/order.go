package cart

import (
	"errors"
	"time"
)

var ErrEmptyCart = errors.New("cart is empty")

// UnknownEmail is the sentinel sent when the shopper's identity cannot be
// resolved. The order service rejects it at submission.
const UnknownEmail = "unknown"

type OrderItem struct {
	ItemName  string  `json:"itemName"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	CreatedAt string  `json:"createdAt"`
}

type OrderPayload struct {
	OrderID   int64       `json:"orderId"`
	UserEmail string      `json:"userEmail"`
	Items     []OrderItem `json:"items"`
}

// PrepareOrder assembles the submit payload: a time-based order id, one
// line per cart entry sharing a creation timestamp. The generated id is
// recorded in storage for later status lookups.
func (s *Store) PrepareOrder(userEmail string) (*OrderPayload, error) {
	if len(s.items) == 0 {
		return nil, ErrEmptyCart
	}
	if userEmail == "" {
		userEmail = UnknownEmail
	}

	now := time.Now()
	createdAt := now.UTC().Format(time.RFC3339)

	payload := &OrderPayload{
		OrderID:   now.UnixMilli(),
		UserEmail: userEmail,
		Items:     make([]OrderItem, 0, len(s.items)),
	}
	for _, it := range s.items {
		payload.Items = append(payload.Items, OrderItem{
			ItemName:  it.Title,
			Price:     it.Price,
			Quantity:  it.Quantity,
			CreatedAt: createdAt,
		})
	}

	if err := s.storage.RecordOrderID(payload.OrderID); err != nil {
		return nil, err
	}
	return payload, nil
}
