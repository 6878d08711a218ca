package cart

import (
	"math"

	"github.com/gowthamlakshman94/Canteen-Automation-System/pkg/price"
)

// Row is one rendered cart line.
type Row struct {
	Title     string
	Image     string
	UnitPrice string
	Quantity  int
	LineTotal string
}

// View is the cart projected for display: one row per item and the
// formatted grand total.
type View struct {
	Rows  []Row
	Total string
}

// Total sums price×quantity over the store, rounded to two decimals.
// Quantities come from the store only; there is no ambient render state.
func (s *Store) Total() float64 {
	total := 0.0
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return math.Round(total*100) / 100
}

// Render is a pure projection of the item list.
func Render(items []Item) View {
	v := View{Rows: make([]Row, 0, len(items))}
	total := 0.0
	for _, it := range items {
		line := it.Price * float64(it.Quantity)
		total += line
		v.Rows = append(v.Rows, Row{
			Title:     it.Title,
			Image:     it.Image,
			UnitPrice: price.Format(it.Price),
			Quantity:  it.Quantity,
			LineTotal: price.Format(line),
		})
	}
	v.Total = price.Format(total)
	return v
}
