// Package orders holds the order ledger: checkout of a cart into an order,
// the append-only order history and the events describing it.
package orders

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ariefcatur/go-inmem-shop/internal/apperr"
	"github.com/ariefcatur/go-inmem-shop/internal/cart"
	"github.com/ariefcatur/go-inmem-shop/internal/catalog"
)

// Stock is the catalog capability the ledger needs at checkout.
type Stock interface {
	DecrementStock(lines []catalog.StockLine) error
}

// Carts hands out a session's items for checkout and empties the cart once
// the commit succeeds.
type Carts interface {
	Checkout(session string, commit func(items []cart.LineItem) error) error
}

type Ledger struct {
	stock Stock
	carts Carts
	now   func() time.Time
	newID func() string

	mu     sync.RWMutex
	orders []Order
	byID   map[string]int
}

func NewLedger(stock Stock, carts Carts) *Ledger {
	return &Ledger{
		stock: stock,
		carts: carts,
		now:   time.Now,
		newID: shortID,
		byID:  make(map[string]int),
	}
}

// shortID is the first 8 hex digits of a random UUID, upper-cased.
func shortID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// Place converts the session's cart into an order. Stock for every line is
// re-validated and decremented in one step; on any failure the catalog, the
// cart and the history are left untouched.
func (l *Ledger) Place(session string, customer map[string]any) (Order, error) {
	var placed Order
	err := l.carts.Checkout(session, func(items []cart.LineItem) error {
		lines := make([]catalog.StockLine, 0, len(items))
		for _, it := range items {
			lines = append(lines, catalog.StockLine{ProductID: it.ProductID, ProductName: it.ProductName, Qty: it.Quantity})
		}
		if err := l.stock.DecrementStock(lines); err != nil {
			return err
		}

		if customer == nil {
			customer = map[string]any{}
		}
		l.mu.Lock()
		defer l.mu.Unlock()
		o := Order{
			ID:         l.uniqueID(),
			Date:       l.now(),
			Customer:   customer,
			Items:      items,
			OrderTotal: cart.Total(items),
			Status:     StatusPlaced,
		}
		l.byID[o.ID] = len(l.orders)
		l.orders = append(l.orders, o)
		placed = o.clone()
		return nil
	})
	if err != nil {
		return Order{}, err
	}
	return placed, nil
}

// caller holds l.mu
func (l *Ledger) uniqueID() string {
	for {
		id := l.newID()
		if _, taken := l.byID[id]; !taken {
			return id
		}
	}
}

// All returns the order history in placement order.
func (l *Ledger) All() []Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Order, len(l.orders))
	for i, o := range l.orders {
		out[i] = o.clone()
	}
	return out
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}

func (l *Ledger) Get(id string) (Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, ok := l.byID[id]
	if !ok {
		return Order{}, fmt.Errorf("%w: order %s", apperr.ErrNotFound, id)
	}
	return l.orders[i].clone(), nil
}

// SetStatus overwrites the status of an order and returns the updated order
// along with its previous status. Any value is accepted.
func (l *Ledger) SetStatus(id string, status Status) (Order, Status, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i, ok := l.byID[id]
	if !ok {
		return Order{}, "", fmt.Errorf("%w: order %s", apperr.ErrNotFound, id)
	}
	prev := l.orders[i].Status
	l.orders[i].Status = status
	return l.orders[i].clone(), prev, nil
}
