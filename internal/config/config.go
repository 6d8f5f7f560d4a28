// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr        string
	ServiceName     string
	LogLevel        string
	LogFormat       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	SeedCatalog     bool
	CORSOrigins     []string

	// Empty RedisAddr disables checkout idempotency keys.
	RedisAddr string
	// Empty KafkaBrokers disables order event publishing.
	KafkaBrokers []string

	OrderEventsGroup   string
	OrderEventsWorkers int
}

func Load() Config {
	return Config{
		HTTPAddr:           getenv("HTTP_ADDR", ":8081"),
		ServiceName:        getenv("SERVICE_NAME", "shop-api"),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		LogFormat:          getenv("LOG_FORMAT", "json"),
		RequestTimeout:     time.Duration(atoienv("REQUEST_TIMEOUT_MS", 15000)) * time.Millisecond,
		ShutdownTimeout:    time.Duration(atoienv("SHUTDOWN_TIMEOUT", 10)) * time.Second,
		SeedCatalog:        boolenv("SEED_CATALOG", true),
		CORSOrigins:        splitCSV(getenv("CORS_ALLOWED_ORIGINS", "*")),
		RedisAddr:          getenv("REDIS_ADDR", ""),
		KafkaBrokers:       splitCSV(getenv("KAFKA_BROKERS", "")),
		OrderEventsGroup:   getenv("ORDER_EVENTS_GROUP", "order-events"),
		OrderEventsWorkers: atoienv("ORDER_EVENTS_WORKERS", 4),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoienv(k string, def int) int {
	n, err := strconv.Atoi(getenv(k, ""))
	if err != nil {
		return def
	}
	return n
}

func boolenv(k string, def bool) bool {
	b, err := strconv.ParseBool(getenv(k, ""))
	if err != nil {
		return def
	}
	return b
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
