package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"furniture-chatbot/pkg/log"
)

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.AccessLog())
	r.GET("/ping", append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})...)
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine(New(log.NewNop(), 0))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(HeaderRequestID)
		if len(id) != 36 {
			t.Fatalf("expected a uuid request id, got %q", id)
		}
		if w.Body.String() != id {
			t.Errorf("context request id %q does not match header %q", w.Body.String(), id)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		r.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderRequestID); got != "abc-123" {
			t.Errorf("expected propagated id, got %q", got)
		}
		if w.Body.String() != "abc-123" {
			t.Errorf("expected id in context, got %q", w.Body.String())
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 10 per minute gives a burst of one request
	mw := New(log.NewNop(), 10)
	r := newEngine(mw, mw.RateLimit())

	do := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do("10.0.0.1"); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := do("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}
	if code := do("10.0.0.2"); code != http.StatusOK {
		t.Errorf("other client: expected 200, got %d", code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := New(log.NewNop(), 0)
	r := newEngine(mw, mw.RateLimit())

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestNewRateLimiterBurst(t *testing.T) {
	tests := []struct {
		perMin    int
		wantBurst int
	}{
		{perMin: 1, wantBurst: 1},
		{perMin: 120, wantBurst: 12},
	}
	for _, tc := range tests {
		if rl := newRateLimiter(tc.perMin); rl.burst != tc.wantBurst {
			t.Errorf("newRateLimiter(%d).burst = %d, want %d", tc.perMin, rl.burst, tc.wantBurst)
		}
	}
}
