package cart_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gowthamlakshman94/Canteen-Automation-System/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage is an in-memory Storage so store behavior is testable
// without touching disk.
type memStorage struct {
	items   []cart.Item
	orderID int64
	loadErr error
	saves   int
}

func (m *memStorage) Load() ([]cart.Item, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items, nil
}

func (m *memStorage) Save(items []cart.Item) error {
	m.items = items
	m.saves++
	return nil
}

func (m *memStorage) RecordOrderID(id int64) error {
	m.orderID = id
	return nil
}

func (m *memStorage) LastOrderID() (int64, bool) {
	return m.orderID, m.orderID != 0
}

func tea() cart.Item {
	return cart.Item{Title: "Tea", Price: 10, Quantity: 1}
}

func samosa() cart.Item {
	return cart.Item{Title: "Samosa", Price: 15, Quantity: 1}
}

func TestAddSameItemIncrementsQuantity(t *testing.T) {
	s := cart.NewStore(&memStorage{})

	s.Add(tea())
	s.Add(tea())

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 20, s.Total(), 1e-9)
}

func TestAddFloorsQuantityAtOne(t *testing.T) {
	s := cart.NewStore(&memStorage{})

	it := tea()
	it.Quantity = -3
	s.Add(it)

	require.Len(t, s.Items(), 1)
	assert.Equal(t, 1, s.Items()[0].Quantity)
}

func TestSetQuantityClamps(t *testing.T) {
	s := cart.NewStore(&memStorage{})
	s.Add(tea())

	s.SetQuantity("Tea", 0)
	assert.Equal(t, 1, s.Items()[0].Quantity)

	s.SetQuantity("Tea", -7)
	assert.Equal(t, 1, s.Items()[0].Quantity)

	s.SetQuantity("Tea", 4)
	assert.Equal(t, 4, s.Items()[0].Quantity)
}

func TestRemoveAndClear(t *testing.T) {
	s := cart.NewStore(&memStorage{})
	s.Add(tea())
	s.Add(samosa())

	s.Remove("Tea")
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "Samosa", s.Items()[0].Title)

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Total())
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := cart.NewStore(&memStorage{})
	s.Add(tea())
	s.Add(samosa())
	s.Add(cart.Item{Title: "Coffee", Price: 12, Quantity: 1})

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Tea", items[0].Title)
	assert.Equal(t, "Samosa", items[1].Title)
	assert.Equal(t, "Coffee", items[2].Title)
}

func TestCorruptStorageYieldsEmptyCart(t *testing.T) {
	s := cart.NewStore(&memStorage{loadErr: errors.New("corrupt snapshot")})
	assert.Zero(t, s.Len())

	// and the store still works
	s.Add(tea())
	assert.Equal(t, 1, s.Len())
}

func TestMutationsPersistSnapshot(t *testing.T) {
	m := &memStorage{}
	s := cart.NewStore(m)

	s.Add(tea())
	s.SetQuantity("Tea", 3)
	s.Remove("Tea")

	assert.Equal(t, 3, m.saves)
}

func TestOnChangeFiresAfterMutation(t *testing.T) {
	s := cart.NewStore(&memStorage{})
	var seen [][]cart.Item
	s.OnChange(func(items []cart.Item) { seen = append(seen, items) })

	s.Add(tea())
	s.Clear()

	require.Len(t, seen, 2)
	assert.Len(t, seen[0], 1)
	assert.Len(t, seen[1], 0)
}

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	s := cart.NewStore(cart.NewFileStorage(path))
	s.Add(tea())
	s.Add(samosa())

	// a fresh store sees the persisted cart
	reloaded := cart.NewStore(cart.NewFileStorage(path))
	require.Equal(t, 2, reloaded.Len())
	assert.Equal(t, "Tea", reloaded.Items()[0].Title)
}

func TestFileStorageCorruptFileFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := cart.NewStore(cart.NewFileStorage(path))
	assert.Zero(t, s.Len())
}

func TestFileStorageKeepsOrderIDAcrossSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	fs := cart.NewFileStorage(path)

	require.NoError(t, fs.RecordOrderID(1732500000000))
	require.NoError(t, fs.Save([]cart.Item{tea()}))

	id, ok := fs.LastOrderID()
	require.True(t, ok)
	assert.Equal(t, int64(1732500000000), id)
}
