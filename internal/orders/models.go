package orders

import (
	"time"

	"github.com/ariefcatur/go-inmem-shop/internal/cart"
)

// Order is an immutable snapshot of a checked-out cart. Only Status changes
// after creation.
type Order struct {
	ID         string          `json:"order_id"`
	Date       time.Time       `json:"date"`
	Customer   map[string]any  `json:"customer"`
	Items      []cart.LineItem `json:"items"`
	OrderTotal float64         `json:"order_total"`
	Status     Status          `json:"status"`
}

func (o Order) clone() Order {
	items := make([]cart.LineItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	cust := make(map[string]any, len(o.Customer))
	for k, v := range o.Customer {
		cust[k] = v
	}
	o.Customer = cust
	return o
}
