package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newLimitedRouter(t *testing.T, limit int, window time.Duration) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	limiter := NewRateLimiterWithConfig(client, limit, window)
	engine.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine, mr
}

func doLogin(engine *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:50000"
	engine.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	engine, _ := newLimitedRouter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		if code := doLogin(engine); code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, code)
		}
	}

	if code := doLogin(engine); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 past the limit, got %d", code)
	}
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	engine, mr := newLimitedRouter(t, 1, time.Minute)

	if code := doLogin(engine); code != http.StatusOK {
		t.Fatalf("expected first attempt to pass, got %d", code)
	}
	if code := doLogin(engine); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 inside the window, got %d", code)
	}

	mr.FastForward(2 * time.Minute)

	if code := doLogin(engine); code != http.StatusOK {
		t.Errorf("expected a fresh window after expiry, got %d", code)
	}
}

func TestRateLimiter_FailsOpenWithoutRedis(t *testing.T) {
	engine, mr := newLimitedRouter(t, 1, time.Minute)
	mr.Close()

	if code := doLogin(engine); code != http.StatusOK {
		t.Errorf("expected requests to pass when redis is down, got %d", code)
	}
}
