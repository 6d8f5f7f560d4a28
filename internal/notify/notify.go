// Package notify handles order events read back from Kafka.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-inmem-shop/internal/orders"
)

type Handler struct {
	log *zap.Logger
}

func NewHandler(log *zap.Logger) *Handler {
	return &Handler{log: log}
}

// Handle decodes an order event envelope and logs it. Undecodable messages
// return an error so their offsets are not committed.
func (h *Handler) Handle(_ context.Context, m kafka.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	base := []zap.Field{
		zap.String("event_id", env.EventID),
		zap.String("order_id", env.CorrelationID),
		zap.String("producer", env.Producer),
		zap.Time("occurred_at", env.OccurredAt),
	}

	switch env.EventType {
	case orders.EventOrderPlaced:
		p, err := unwrap[orders.OrderPlacedPayload](env.Payload)
		if err != nil {
			return err
		}
		h.log.Info("order placed", append(base,
			zap.Int("items", len(p.Items)),
			zap.Float64("order_total", p.OrderTotal),
		)...)
	case orders.EventOrderStatusChanged:
		p, err := unwrap[orders.OrderStatusChangedPayload](env.Payload)
		if err != nil {
			return err
		}
		h.log.Info("order status changed", append(base,
			zap.String("from", string(p.From)),
			zap.String("to", string(p.To)),
		)...)
	default:
		h.log.Debug("ignoring event", append(base, zap.String("event_type", env.EventType))...)
	}
	return nil
}

func unwrap[T any](payload json.RawMessage) (T, error) {
	var t T
	if err := json.Unmarshal(payload, &t); err != nil {
		return t, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}
