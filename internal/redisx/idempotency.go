package redisx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckoutKeys maps client idempotency keys to the order they produced.
type CheckoutKeys struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCheckoutKeys(rdb *redis.Client) *CheckoutKeys {
	return &CheckoutKeys{rdb: rdb, ttl: TTLIdempotency}
}

// Lookup returns the order id recorded for key, if any.
func (k *CheckoutKeys) Lookup(ctx context.Context, key string) (string, bool, error) {
	id, err := k.rdb.Get(ctx, fmt.Sprintf(KeyIdemCheckout, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// Remember records orderID for key unless the key is already taken.
func (k *CheckoutKeys) Remember(ctx context.Context, key, orderID string) (bool, error) {
	return k.rdb.SetNX(ctx, fmt.Sprintf(KeyIdemCheckout, key), orderID, k.ttl).Result()
}
