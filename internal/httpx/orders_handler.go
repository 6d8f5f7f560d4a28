package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-inmem-shop/internal/apperr"
	"github.com/ariefcatur/go-inmem-shop/internal/orders"
)

type placeOrderReq struct {
	SessionID string         `json:"session_id"`
	Customer  map[string]any `json:"customer"`
}

type statusReq struct {
	Status string `json:"status"`
}

func (a *API) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.Log, err)
		return
	}
	if req.SessionID == "" {
		writeError(w, a.Log, apperr.Validation("session_id is required"))
		return
	}

	ctx := r.Context()
	idemKey := r.Header.Get("Idempotency-Key")
	if idemKey != "" && a.Idem != nil {
		// Redis is a shortcut only; when it is unreachable the order is placed normally.
		id, ok, err := a.Idem.Lookup(ctx, idemKey)
		if err != nil {
			a.Log.Warn("idempotency lookup failed", zap.String("key", idemKey), zap.Error(err))
		} else if ok {
			if o, err := a.Orders.Get(id); err == nil {
				writeData(w, http.StatusOK, "order already placed", o)
				return
			}
		}
	}

	o, err := a.Orders.Place(req.SessionID, req.Customer)
	if err != nil {
		writeError(w, a.Log, err)
		return
	}

	if idemKey != "" && a.Idem != nil {
		if _, err := a.Idem.Remember(ctx, idemKey, o.ID); err != nil {
			a.Log.Warn("idempotency remember failed", zap.String("key", idemKey), zap.Error(err))
		}
	}
	a.Log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.String("session_id", req.SessionID),
		zap.Int("items", len(o.Items)),
		zap.Float64("order_total", o.OrderTotal),
	)
	a.publish(r, orders.TopicOrderPlaced, orders.EventOrderPlaced, o.ID, orders.PlacedPayload(o))

	writeData(w, http.StatusCreated, "order placed", o)
}

func (a *API) listOrders(w http.ResponseWriter, r *http.Request) {
	all := a.Orders.All()
	writeList(w, all, len(all))
}

func (a *API) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := a.Orders.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, a.Log, err)
		return
	}
	writeData(w, http.StatusOK, "", o)
}

func (a *API) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.Log, err)
		return
	}
	if req.Status == "" {
		writeError(w, a.Log, apperr.Validation("status is required"))
		return
	}
	o, prev, err := a.Orders.SetStatus(chi.URLParam(r, "id"), orders.Status(req.Status))
	if err != nil {
		writeError(w, a.Log, err)
		return
	}
	if !o.Status.Known() {
		a.Log.Debug("non-standard order status", zap.String("order_id", o.ID), zap.String("status", req.Status))
	}
	a.Log.Info("order status changed", zap.String("order_id", o.ID), zap.String("from", string(prev)), zap.String("to", string(o.Status)))
	a.publish(r, orders.TopicOrderStatusChanged, orders.EventOrderStatusChanged, o.ID,
		orders.OrderStatusChangedPayload{OrderID: o.ID, From: prev, To: o.Status})

	writeData(w, http.StatusOK, "order status updated", o)
}

// publish emits an order event when a publisher is configured. Failures are
// logged; the order itself is already committed.
func (a *API) publish(r *http.Request, topic, eventType, orderID string, payload any) {
	if a.Events == nil {
		return
	}
	env, err := orders.NewEnvelope(eventType, a.Service, middleware.GetReqID(r.Context()), orderID, payload)
	if err != nil {
		a.Log.Error("build event", zap.String("event_type", eventType), zap.Error(err))
		return
	}
	b, err := json.Marshal(env)
	if err != nil {
		a.Log.Error("encode event", zap.String("event_type", eventType), zap.Error(err))
		return
	}
	if !a.Events.Publish(topic, orders.PartitionKey(orderID), b,
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	) {
		a.Log.Warn("event dropped, publisher closed", zap.String("event_type", eventType), zap.String("order_id", orderID))
	}
}
