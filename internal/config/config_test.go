package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var keys = []string{
	"HTTP_ADDR", "SERVICE_NAME", "LOG_LEVEL", "LOG_FORMAT", "REQUEST_TIMEOUT_MS", "SHUTDOWN_TIMEOUT",
	"SEED_CATALOG", "CORS_ALLOWED_ORIGINS", "REDIS_ADDR", "KAFKA_BROKERS",
	"ORDER_EVENTS_GROUP", "ORDER_EVENTS_WORKERS",
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
	c := Load()
	assert.Equal(t, ":8081", c.HTTPAddr)
	assert.Equal(t, "shop-api", c.ServiceName)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.True(t, c.SeedCatalog)
	assert.Equal(t, []string{"*"}, c.CORSOrigins)
	assert.Empty(t, c.RedisAddr)
	assert.Empty(t, c.KafkaBrokers)
	assert.Equal(t, "order-events", c.OrderEventsGroup)
	assert.Equal(t, 4, c.OrderEventsWorkers)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REQUEST_TIMEOUT_MS", "250")
	t.Setenv("SHUTDOWN_TIMEOUT", "2")
	t.Setenv("SEED_CATALOG", "false")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("KAFKA_BROKERS", " k1:9092, ,k2:9092 ")
	t.Setenv("ORDER_EVENTS_WORKERS", "x")
	c := Load()
	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, 250*time.Millisecond, c.RequestTimeout)
	assert.Equal(t, 2*time.Second, c.ShutdownTimeout)
	assert.False(t, c.SeedCatalog)
	assert.Equal(t, "localhost:6379", c.RedisAddr)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.KafkaBrokers)
	assert.Equal(t, 4, c.OrderEventsWorkers, "bad int falls back to default")
}
