package redisx

import "time"

const (
	// Checkout idempotency: idem:checkout:{idempotency_key} -> order_id
	KeyIdemCheckout = "idem:checkout:%s"
)

var TTLIdempotency = 24 * time.Hour
