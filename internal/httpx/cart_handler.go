package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-inmem-shop/internal/apperr"
)

type cartItemReq struct {
	ProductID *int `json:"product_id"`
	Quantity  *int `json:"quantity"`
}

type cartView struct {
	Items       any     `json:"items"`
	TotalItems  int     `json:"total_items"`
	TotalAmount float64 `json:"total_amount"`
}

func (a *API) getCart(w http.ResponseWriter, r *http.Request) {
	c := a.Carts.Get(chi.URLParam(r, "session"))
	writeData(w, http.StatusOK, "", cartView{Items: c.Items, TotalItems: len(c.Items), TotalAmount: c.TotalAmount})
}

func (a *API) addToCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.Log, err)
		return
	}
	if req.ProductID == nil {
		writeError(w, a.Log, apperr.Validation("product_id is required"))
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	c, err := a.Carts.Add(chi.URLParam(r, "session"), *req.ProductID, qty)
	if err != nil {
		writeError(w, a.Log, err)
		return
	}
	writeData(w, http.StatusOK, "added to cart", c)
}

func (a *API) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.Log, err)
		return
	}
	if req.ProductID == nil {
		writeError(w, a.Log, apperr.Validation("product_id is required"))
		return
	}
	if req.Quantity == nil {
		writeError(w, a.Log, apperr.Validation("quantity is required"))
		return
	}
	c, err := a.Carts.Update(chi.URLParam(r, "session"), *req.ProductID, *req.Quantity)
	if err != nil {
		writeError(w, a.Log, err)
		return
	}
	writeData(w, http.StatusOK, "cart updated", c)
}

func (a *API) removeFromCart(w http.ResponseWriter, r *http.Request) {
	pid, ok := intParam(w, r, "productID")
	if !ok {
		return
	}
	c, err := a.Carts.Remove(chi.URLParam(r, "session"), pid)
	if err != nil {
		writeError(w, a.Log, err)
		return
	}
	writeData(w, http.StatusOK, "removed from cart", c)
}
