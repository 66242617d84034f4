//go:build unit

package middleware_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler captures every record so tests can assert which
// logger the middleware actually writes to.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	msgs := make([]string, len(h.records))
	for i, r := range h.records {
		msgs[i] = r.Message
	}
	return msgs
}

func TestLoggingMiddlewareUsesInjectedLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := &recordingHandler{}
	logger := slog.New(rec)
	cfg := config.NewTestConfig().Log

	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware(logger, cfg))
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Request started", "Request completed"}, rec.messages())
}

func TestLoggingMiddlewareEscalatesLevelOnErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := &recordingHandler{}
	logger := slog.New(rec)
	cfg := config.NewTestConfig().Log

	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware(logger, cfg))
	engine.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	engine.ServeHTTP(w, req)

	msgs := rec.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Request completed", msgs[1])
	assert.Equal(t, slog.LevelError, rec.records[1].Level)
}
