package httpx

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-inmem-shop/internal/cart"
	"github.com/ariefcatur/go-inmem-shop/internal/catalog"
	"github.com/ariefcatur/go-inmem-shop/internal/orders"
)

// Publisher sends an encoded event to a topic. kafka.Producer satisfies it.
type Publisher interface {
	Publish(topic string, key, value []byte, headers ...kafkago.Header) bool
}

// IdempotencyStore remembers which order a checkout idempotency key produced.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (string, bool, error)
	Remember(ctx context.Context, key, orderID string) (bool, error)
}

// API wires the shop components to HTTP. Events and Idem are optional.
type API struct {
	Catalog *catalog.Catalog
	Carts   *cart.Store
	Orders  *orders.Ledger
	Events  Publisher
	Idem    IdempotencyStore
	Service string
	Log     *zap.Logger
}

func (a *API) Register(r *chi.Mux) {
	r.Get("/", a.index)
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", a.listProducts)
		r.Post("/products", a.createProduct)
		r.Get("/products/{id}", a.getProduct)
		r.Put("/products/{id}", a.updateProduct)
		r.Delete("/products/{id}", a.deleteProduct)

		r.Get("/cart/{session}", a.getCart)
		r.Post("/cart/{session}/add", a.addToCart)
		r.Put("/cart/{session}/update", a.updateCartItem)
		r.Delete("/cart/{session}/remove/{productID}", a.removeFromCart)

		r.Post("/calculate/item", a.calculateItem)
		r.Get("/calculate/cart/{session}", a.calculateCart)

		r.Post("/orders", a.placeOrder)
		r.Get("/orders", a.listOrders)
		r.Get("/orders/{id}", a.getOrder)
		r.Put("/orders/{id}/status", a.updateOrderStatus)

		r.Get("/dashboard/stats", a.dashboardStats)
	})
}

// intParam parses a numeric path segment; a non-numeric value does not match
// the route and is answered with 404.
func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		writeFailure(w, http.StatusNotFound, "endpoint not found")
		return 0, false
	}
	return n, true
}

var endpoints = map[string]map[string]string{
	"products": {
		"GET /api/products":         "list products",
		"GET /api/products/{id}":    "get a product",
		"POST /api/products":        "create a product",
		"PUT /api/products/{id}":    "update a product",
		"DELETE /api/products/{id}": "delete a product",
	},
	"cart": {
		"GET /api/cart/{session}":                       "view cart",
		"POST /api/cart/{session}/add":                  "add an item",
		"PUT /api/cart/{session}/update":                "set an item quantity",
		"DELETE /api/cart/{session}/remove/{productID}": "remove an item",
	},
	"orders": {
		"GET /api/orders":             "list orders",
		"GET /api/orders/{id}":        "get an order",
		"POST /api/orders":            "place an order from a cart",
		"PUT /api/orders/{id}/status": "update order status",
	},
	"calculate": {
		"POST /api/calculate/item":          "line item total",
		"GET /api/calculate/cart/{session}": "cart summary with tax",
	},
	"dashboard": {
		"GET /api/dashboard/stats": "sales statistics",
	},
}

func (a *API) index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "in-memory shop REST API",
		"version":   "1.0.0",
		"service":   a.Service,
		"endpoints": endpoints,
	})
}
