package catalog

import (
	"fmt"

	"github.com/ariefcatur/go-inmem-shop/internal/apperr"
)

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// Draft is the input to Create. Name, Price and Stock must be present.
type Draft struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
}

// Patch carries the fields to merge over an existing product; nil fields are left alone.
type Patch struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
}

// StockLine is one product quantity to take out of stock.
type StockLine struct {
	ProductID   int
	ProductName string
	Qty         int
}

// StockError reports the first line that could not be covered by current stock.
type StockError struct {
	ProductID   int
	ProductName string
	Required    int
	Available   int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (required %d, available %d)", e.ProductName, e.Required, e.Available)
}

func (e *StockError) Unwrap() error { return apperr.ErrInsufficientStock }
