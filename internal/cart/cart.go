// Package cart keeps the per-session shopping carts.
//
// Carts are created lazily on the first successful add and emptied, never
// removed, by checkout. Each cart holds at most one line per product.
package cart

import (
	"fmt"
	"sync"

	"github.com/ariefcatur/go-inmem-shop/internal/apperr"
	"github.com/ariefcatur/go-inmem-shop/internal/catalog"
	"github.com/ariefcatur/go-inmem-shop/internal/pricing"
)

type LineItem struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}

// Cart is a snapshot of one session's items together with their total.
type Cart struct {
	Items       []LineItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
}

// Products is the read side of the catalog the cart needs for stock checks.
type Products interface {
	Get(id int) (catalog.Product, error)
}

type Store struct {
	mu       sync.Mutex
	products Products
	carts    map[string][]LineItem
}

func NewStore(products Products) *Store {
	return &Store{products: products, carts: make(map[string][]LineItem)}
}

// Get never fails: an unknown session has an empty cart.
func (s *Store) Get(session string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.carts[session])
}

// Add puts qty units of a product in the session's cart, merging with an
// existing line. The stock check uses the prospective line quantity.
func (s *Store) Add(session string, productID, qty int) (Cart, error) {
	if qty <= 0 {
		return Cart{}, apperr.Validation("quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.products.Get(productID)
	if err != nil {
		return Cart{}, err
	}
	items := s.carts[session]
	i := indexOf(items, productID)

	want := qty
	if i >= 0 {
		want += items[i].Quantity
	}
	if p.Stock < want {
		return Cart{}, &catalog.StockError{ProductID: p.ID, ProductName: p.Name, Required: want, Available: p.Stock}
	}

	if i >= 0 {
		items[i].Quantity = want
		items[i].TotalPrice = pricing.ItemTotal(want, items[i].UnitPrice)
	} else {
		items = append(items, LineItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    qty,
			TotalPrice:  pricing.ItemTotal(qty, p.Price),
		})
	}
	s.carts[session] = items
	return snapshot(items), nil
}

// Update sets the quantity of a line already in the cart. The stock check is
// against the product's absolute stock, not the difference from the old quantity.
func (s *Store) Update(session string, productID, qty int) (Cart, error) {
	if qty <= 0 {
		return Cart{}, apperr.Validation("quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.carts[session]
	if !ok {
		return Cart{}, fmt.Errorf("%w: cart %q", apperr.ErrNotFound, session)
	}
	i := indexOf(items, productID)
	if i < 0 {
		return Cart{}, fmt.Errorf("%w: product %d not in cart", apperr.ErrNotFound, productID)
	}
	p, err := s.products.Get(productID)
	if err != nil {
		return Cart{}, err
	}
	if p.Stock < qty {
		return Cart{}, &catalog.StockError{ProductID: p.ID, ProductName: p.Name, Required: qty, Available: p.Stock}
	}

	items[i].Quantity = qty
	items[i].TotalPrice = pricing.ItemTotal(qty, items[i].UnitPrice)
	return snapshot(items), nil
}

// Remove drops the product's line. A product missing from the cart is a no-op;
// an unknown session is reported as not found.
func (s *Store) Remove(session string, productID int) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.carts[session]
	if !ok {
		return Cart{}, fmt.Errorf("%w: cart %q", apperr.ErrNotFound, session)
	}
	if i := indexOf(items, productID); i >= 0 {
		items = append(items[:i], items[i+1:]...)
	}
	s.carts[session] = items
	return snapshot(items), nil
}

// Checkout hands a copy of the session's items to commit while holding the
// store lock. The cart is emptied only if commit succeeds; an absent or empty
// cart fails with ErrEmptyCart without calling commit.
func (s *Store) Checkout(session string, commit func(items []LineItem) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[session]
	if len(items) == 0 {
		return apperr.ErrEmptyCart
	}
	if err := commit(clone(items)); err != nil {
		return err
	}
	s.carts[session] = []LineItem{}
	return nil
}

// Total is the cart total for any list of line items.
func Total(items []LineItem) float64 {
	return pricing.CartTotal(Lines(items))
}

func Lines(items []LineItem) []pricing.Line {
	out := make([]pricing.Line, len(items))
	for i, it := range items {
		out[i] = pricing.Line{Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return out
}

func snapshot(items []LineItem) Cart {
	c := clone(items)
	return Cart{Items: c, TotalAmount: Total(c)}
}

func clone(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

func indexOf(items []LineItem, productID int) int {
	for i := range items {
		if items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
