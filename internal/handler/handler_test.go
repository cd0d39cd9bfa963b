package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/auction-display-service/internal/display"
	"github.com/maxviazov/auction-display-service/internal/handler"
	"github.com/maxviazov/auction-display-service/internal/service"
	"github.com/maxviazov/auction-display-service/pkg/response"
)

var now = time.Date(2026, time.October, 18, 8, 30, 0, 0, time.UTC)

// newRouter wires real services over a fixed clock.
func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zerolog.New(io.Discard)
	clock := display.FixedClock(now)

	r := gin.New()
	r.Use(handler.RequestLogger(log))
	handler.Register(r, "test",
		service.NewCountdownService(clock, log),
		service.NewPaginationService(display.DefaultMaxVisiblePages, log),
		service.NewAuctionService(clock, time.UTC, log),
	)
	return r
}

func do(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorPayload {
	t.Helper()
	var p response.ErrorPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p), w.Body.String())
	return p
}

func TestHealth(t *testing.T) {
	r := newRouter(t)
	for _, path := range []string{"/live", "/ready", "/api/v1/health/live", "/api/v1/health/ready"} {
		w := do(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := do(r, http.MethodGet, "/ready", nil)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestDocs(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi:")

	w = do(r, http.MethodGet, "/docs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestRequestLogger_RequestID(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/live", nil)
	assert.Len(t, w.Header().Get(handler.RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	req.Header.Set(handler.RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(handler.RequestIDHeader))
}
