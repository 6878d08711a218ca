package cart

import (
	"encoding/json"
	"os"
)

// snapshot is the on-disk shape of the two storage slots.
type snapshot struct {
	Items       []Item `json:"cartItems"`
	LastOrderID int64  `json:"orderId,omitempty"`
}

// FileStorage persists the cart as a single JSON file, the kiosk
// equivalent of the browser's localStorage slots.
type FileStorage struct {
	Path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

func (f *FileStorage) read() (snapshot, error) {
	var snap snapshot
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return snap, err
	}
	err = json.Unmarshal(data, &snap)
	return snap, err
}

func (f *FileStorage) write(snap snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0644)
}

func (f *FileStorage) Load() ([]Item, error) {
	snap, err := f.read()
	if err != nil {
		return nil, err
	}
	return snap.Items, nil
}

func (f *FileStorage) Save(items []Item) error {
	snap, _ := f.read() // keep the order id slot across cart saves
	snap.Items = items
	return f.write(snap)
}

func (f *FileStorage) RecordOrderID(id int64) error {
	snap, _ := f.read()
	snap.LastOrderID = id
	return f.write(snap)
}

func (f *FileStorage) LastOrderID() (int64, bool) {
	snap, err := f.read()
	if err != nil || snap.LastOrderID == 0 {
		return 0, false
	}
	return snap.LastOrderID, true
}
