// Package stats folds the order history and the catalog into dashboard figures.
// Nothing is cached; every call recomputes from the sources.
package stats

import (
	"sort"

	"github.com/ariefcatur/go-inmem-shop/internal/catalog"
	"github.com/ariefcatur/go-inmem-shop/internal/orders"
)

const (
	BestSellingLimit  = 5
	LowStockThreshold = 5
)

type Products interface {
	List() []catalog.Product
}

type History interface {
	All() []orders.Order
}

type ProductSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type Dashboard struct {
	TotalProducts       int               `json:"total_products"`
	TotalOrders         int               `json:"total_orders"`
	TotalRevenue        float64           `json:"total_revenue"`
	BestSellingProducts []ProductSales    `json:"best_selling_products"`
	LowStockProducts    []catalog.Product `json:"low_stock_products"`
}

func Compute(products Products, history History) Dashboard {
	all := history.All()
	list := products.List()

	d := Dashboard{
		TotalProducts:       len(list),
		TotalOrders:         len(all),
		BestSellingProducts: BestSelling(all, BestSellingLimit),
		LowStockProducts:    LowStock(list, LowStockThreshold),
	}
	for _, o := range all {
		d.TotalRevenue += o.OrderTotal
	}
	return d
}

// BestSelling aggregates line items per product id, named after the first
// sale seen, and returns the top n by quantity. Ties keep first-seen order.
func BestSelling(history []orders.Order, n int) []ProductSales {
	var seen []int
	agg := map[int]*ProductSales{}
	for _, o := range history {
		for _, it := range o.Items {
			ps, ok := agg[it.ProductID]
			if !ok {
				ps = &ProductSales{Name: it.ProductName}
				agg[it.ProductID] = ps
				seen = append(seen, it.ProductID)
			}
			ps.Quantity += it.Quantity
			ps.Revenue += it.TotalPrice
		}
	}

	out := make([]ProductSales, 0, len(seen))
	for _, id := range seen {
		out = append(out, *agg[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// LowStock keeps catalog order.
func LowStock(products []catalog.Product, threshold int) []catalog.Product {
	out := []catalog.Product{}
	for _, p := range products {
		if p.Stock < threshold {
			out = append(out, p)
		}
	}
	return out
}
