package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-inmem-shop/internal/catalog"
)

func (a *API) listProducts(w http.ResponseWriter, r *http.Request) {
	ps := a.Catalog.List()
	writeList(w, ps, len(ps))
}

func (a *API) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	p, err := a.Catalog.Get(id)
	if err != nil {
		writeError(w, a.Log, err)
		return
	}
	writeData(w, http.StatusOK, "", p)
}

func (a *API) createProduct(w http.ResponseWriter, r *http.Request) {
	var d catalog.Draft
	if err := decodeBody(r, &d); err != nil {
		writeError(w, a.Log, err)
		return
	}
	p, err := a.Catalog.Create(d)
	if err != nil {
		writeError(w, a.Log, err)
		return
	}
	writeData(w, http.StatusCreated, "", p)
}

func (a *API) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	var patch catalog.Patch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, a.Log, err)
		return
	}
	p, err := a.Catalog.Update(id, patch)
	if err != nil {
		writeError(w, a.Log, err)
		return
	}
	writeData(w, http.StatusOK, "", p)
}

func (a *API) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	a.Catalog.Delete(id)
	writeData(w, http.StatusOK, "product deleted", nil)
}
