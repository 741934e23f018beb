package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func newLimitedEngine(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, requestsPerMin)

	engine := gin.New()
	engine.POST("/chat", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func post(engine *gin.Engine) int {
	req, _ := http.NewRequest(http.MethodPost, "/chat", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	engine := newLimitedEngine(3)

	for i := 0; i < 3; i++ {
		if code := post(engine); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}
	if code := post(engine); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}
}

func TestRateLimit_PerSource(t *testing.T) {
	engine := newLimitedEngine(1)

	if code := post(engine); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := post(engine); code != http.StatusTooManyRequests {
		t.Fatalf("second request from same source: expected 429, got %d", code)
	}

	// A different source has its own bucket.
	req, _ := http.NewRequest(http.MethodPost, "/chat", nil)
	req.RemoteAddr = "198.51.100.9:4321"
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("other source: expected 200, got %d", w.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	engine := newLimitedEngine(0)

	for i := 0; i < 20; i++ {
		if code := post(engine); code != http.StatusOK {
			t.Fatalf("request %d: expected 200 with limiting disabled, got %d", i+1, code)
		}
	}
}
