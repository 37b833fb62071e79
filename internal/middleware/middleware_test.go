package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cptzbik/halfmaraton/config"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func newRouter(cfg config.HTTPServerConfig, mws ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mws...)
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRequestID(t *testing.T) {
	m := New(nopLogger{}, config.HTTPServerConfig{})

	t.Run("generates an ID when absent", func(t *testing.T) {
		r := newRouter(config.HTTPServerConfig{}, m.RequestID())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		if got := w.Header().Get(headerRequestID); got == "" {
			t.Error("expected a generated X-Request-ID header")
		}
	})

	t.Run("echoes a client-supplied ID", func(t *testing.T) {
		r := newRouter(config.HTTPServerConfig{}, m.RequestID())
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(headerRequestID, "client-id-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(headerRequestID); got != "client-id-123" {
			t.Errorf("X-Request-ID = %q, want client-id-123", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	cfg := config.HTTPServerConfig{RateLimitRPS: 1, RateLimitBurst: 2}
	m := New(nopLogger{}, cfg)
	r := newRouter(cfg, m.RateLimit())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("first two requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request should be limited, got %d", codes[2])
	}

	// A different client IP has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("fresh IP should pass, got %d", w.Code)
	}
}
