// Package cart holds the shopper's selected items between kiosk sessions and
// turns them into a submittable order payload. Persistence goes through a
// Storage port so the store works against any backing slot.
package cart

// Item is one selected menu item. Title is the key: adding an item whose
// title is already in the cart increments its quantity.
type Item struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"` // unit price
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Storage is the durable client-side slot pair: the serialized cart and
// the last submitted order id.
type Storage interface {
	Load() ([]Item, error)
	Save(items []Item) error
	RecordOrderID(id int64) error
	LastOrderID() (int64, bool)
}

type Store struct {
	storage  Storage
	items    []Item
	onChange func(items []Item)
}

// NewStore loads the persisted snapshot. A corrupt or absent snapshot
// yields an empty cart, never an error.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	if items, err := storage.Load(); err == nil {
		s.items = items
	}
	return s
}

// OnChange registers the re-render hook, fired after every mutation.
func (s *Store) OnChange(fn func(items []Item)) {
	s.onChange = fn
}

func (s *Store) changed() {
	_ = s.storage.Save(s.items)
	if s.onChange != nil {
		s.onChange(s.Items())
	}
}

// Add puts an item in the cart. Quantities below 1 are floored at 1; an
// existing title has its quantity incremented instead of a second row.
func (s *Store) Add(it Item) {
	if it.Quantity < 1 {
		it.Quantity = 1
	}
	for i := range s.items {
		if s.items[i].Title == it.Title {
			s.items[i].Quantity += it.Quantity
			s.changed()
			return
		}
	}
	s.items = append(s.items, it)
	s.changed()
}

// SetQuantity clamps qty to at least 1. Unknown titles are ignored.
func (s *Store) SetQuantity(title string, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range s.items {
		if s.items[i].Title == title {
			s.items[i].Quantity = qty
			s.changed()
			return
		}
	}
}

func (s *Store) Remove(title string) {
	for i := range s.items {
		if s.items[i].Title == title {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.changed()
			return
		}
	}
}

func (s *Store) Clear() {
	s.items = nil
	s.changed()
}

// Items returns the cart in insertion order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	return len(s.items)
}
