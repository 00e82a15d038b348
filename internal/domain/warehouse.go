package domain

import "errors"

// Common validation errors for Product
var (
	ErrProductIDInvalid = errors.New("product ID must be positive")
	ErrProductNameEmpty = errors.New("product name cannot be empty")
)

// Product represents an item managed by the warehouse demo. It is the one
// entity in the suite that allows in-place mutation after construction:
// its on-hand quantity changes as stock moves.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Key returns the unique key the product is stored under.
func (p *Product) Key() int {
	return p.ID
}

// NewProduct creates a new Product with the given ID, name, and starting
// quantity. Returns an error if validation fails.
func NewProduct(id int, name string, quantity int) (*Product, error) {
	product := &Product{
		ID:       id,
		Name:     name,
		Quantity: quantity,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate checks if the Product has valid data.
// Returns an error if any field fails validation.
func (p *Product) Validate() error {
	if p.ID <= 0 {
		return ErrProductIDInvalid
	}

	if p.Name == "" {
		return ErrProductNameEmpty
	}

	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}

	return nil
}

// SetQuantity updates the product's on-hand quantity.
// Returns ErrNegativeQuantity and leaves the product unchanged when the new
// quantity is negative.
func (p *Product) SetQuantity(quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}

	p.Quantity = quantity
	return nil
}
