// Package catalog owns the product list and the stock counters.
package catalog

import (
	"fmt"
	"sync"

	"github.com/ariefcatur/go-inmem-shop/internal/apperr"
)

type Catalog struct {
	mu       sync.RWMutex
	products []Product
}

func New(seed ...Product) *Catalog {
	c := &Catalog{products: make([]Product, 0, len(seed))}
	c.products = append(c.products, seed...)
	return c
}

func (c *Catalog) List() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

func (c *Catalog) Get(id int) (Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.indexOf(id)
	if i < 0 {
		return Product{}, notFound(id)
	}
	return c.products[i], nil
}

// Create appends a product with id = max(existing ids)+1, or 1 for an empty catalog.
func (c *Catalog) Create(d Draft) (Product, error) {
	switch {
	case d.Name == nil:
		return Product{}, apperr.Validation("missing field name")
	case d.Price == nil:
		return Product{}, apperr.Validation("missing field price")
	case d.Stock == nil:
		return Product{}, apperr.Validation("missing field stock")
	case *d.Price < 0:
		return Product{}, apperr.Validation("price must be >= 0")
	case *d.Stock < 0:
		return Product{}, apperr.Validation("stock must be >= 0")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	p := Product{
		ID:          c.nextID(),
		Name:        *d.Name,
		Price:       *d.Price,
		Stock:       *d.Stock,
		Category:    deref(d.Category),
		Description: deref(d.Description),
	}
	c.products = append(c.products, p)
	return p, nil
}

func (c *Catalog) Update(id int, p Patch) (Product, error) {
	if p.Price != nil && *p.Price < 0 {
		return Product{}, apperr.Validation("price must be >= 0")
	}
	if p.Stock != nil && *p.Stock < 0 {
		return Product{}, apperr.Validation("stock must be >= 0")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return Product{}, notFound(id)
	}
	cur := &c.products[i]
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Price != nil {
		cur.Price = *p.Price
	}
	if p.Stock != nil {
		cur.Stock = *p.Stock
	}
	if p.Category != nil {
		cur.Category = *p.Category
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	return *cur, nil
}

// Delete removes the product if present. Deleting an unknown id is not an error.
func (c *Catalog) Delete(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		c.products = append(c.products[:i], c.products[i+1:]...)
	}
}

// DecrementStock checks every line against current stock and only then applies
// the decrements, all under one write lock. On a shortfall nothing is changed
// and the first offending line is returned as a *StockError.
func (c *Catalog) DecrementStock(lines []StockLine) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := make([]int, len(lines))
	need := make(map[int]int, len(lines))
	for n, l := range lines {
		i := c.indexOf(l.ProductID)
		if i < 0 {
			return &StockError{ProductID: l.ProductID, ProductName: l.ProductName, Required: l.Qty}
		}
		need[i] += l.Qty
		if c.products[i].Stock < need[i] {
			return &StockError{
				ProductID: l.ProductID, ProductName: l.ProductName,
				Required: need[i], Available: c.products[i].Stock,
			}
		}
		idx[n] = i
	}
	for n, l := range lines {
		c.products[idx[n]].Stock -= l.Qty
	}
	return nil
}

func (c *Catalog) indexOf(id int) int {
	for i := range c.products {
		if c.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) nextID() int {
	top := 0
	for _, p := range c.products {
		if p.ID > top {
			top = p.ID
		}
	}
	return top + 1
}

func notFound(id int) error {
	return fmt.Errorf("%w: product %d", apperr.ErrNotFound, id)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
