package domain

import (
	"errors"
	"time"
)

// Common validation errors for StockEntry
var (
	ErrStockEntrySKUEmpty  = errors.New("stock entry SKU cannot be empty")
	ErrStockEntryNameEmpty = errors.New("stock entry name cannot be empty")
)

// StockEntry represents a single inventory movement recorded by the
// inventory logger. Entries are immutable once constructed; corrections are
// recorded as new entries rather than edits.
type StockEntry struct {
	SKU        string    `json:"sku"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	RecordedAt time.Time `json:"recorded_at"`
}

// NewStockEntry creates a new StockEntry with the given SKU, display name,
// and quantity, stamped with the current time.
// Returns an error if validation fails.
func NewStockEntry(sku, name string, quantity int) (*StockEntry, error) {
	entry := &StockEntry{
		SKU:        sku,
		Name:       name,
		Quantity:   quantity,
		RecordedAt: time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the StockEntry has valid data.
// Returns an error if any field fails validation.
func (e *StockEntry) Validate() error {
	if e.SKU == "" {
		return ErrStockEntrySKUEmpty
	}

	if e.Name == "" {
		return ErrStockEntryNameEmpty
	}

	if e.Quantity < 0 {
		return ErrNegativeQuantity
	}

	return nil
}
