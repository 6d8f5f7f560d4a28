package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-inmem-shop/internal/stats"
)

func (a *API) dashboardStats(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, "", stats.Compute(a.Catalog, a.Orders))
}
