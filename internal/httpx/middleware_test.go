package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccessLogFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	mux := NewRouter(zap.New(core), RouterOptions{})

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	req.Header.Set("X-Request-Id", "rid-1")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	f := entries[0].ContextMap()
	assert.Equal(t, "GET", f["method"])
	assert.Equal(t, "/nowhere", f["path"])
	assert.Equal(t, int64(http.StatusNotFound), f["status"])
	assert.Equal(t, "rid-1", f["request_id"])
}

func TestCORSPreflight(t *testing.T) {
	mux := NewRouter(zap.NewNop(), RouterOptions{CORSOrigins: []string{"https://shop.example"}})
	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, "https://shop.example", rr.Header().Get("Access-Control-Allow-Origin"))
}
