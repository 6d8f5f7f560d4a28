package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-inmem-shop/internal/cart"
	"github.com/ariefcatur/go-inmem-shop/internal/pricing"
)

type itemCalcReq struct {
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type itemCalc struct {
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
	Formula    string  `json:"formula"`
}

type summaryLine struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type cartSummary struct {
	Items []summaryLine `json:"items"`
	pricing.Summary
}

func (a *API) calculateItem(w http.ResponseWriter, r *http.Request) {
	var req itemCalcReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.Log, err)
		return
	}
	writeData(w, http.StatusOK, "", itemCalc{
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		TotalPrice: pricing.ItemTotal(req.Quantity, req.UnitPrice),
		Formula:    pricing.Formula(req.Quantity, req.UnitPrice),
	})
}

func (a *API) calculateCart(w http.ResponseWriter, r *http.Request) {
	c := a.Carts.Get(chi.URLParam(r, "session"))
	lines := make([]summaryLine, 0, len(c.Items))
	for _, it := range c.Items {
		lines = append(lines, summaryLine{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  pricing.ItemTotal(it.Quantity, it.UnitPrice),
		})
	}
	writeData(w, http.StatusOK, "", cartSummary{Items: lines, Summary: pricing.Summarize(cart.Lines(c.Items))})
}
