package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Payphone-Digital/roster/internal/constants"
	ctxutil "github.com/Payphone-Digital/roster/pkg/context"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiter_Window(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	if ok, remaining := limiter.Allow("1.1.1.1"); !ok || remaining != 1 {
		t.Fatalf("Expected first request allowed with 1 remaining, got %v/%d", ok, remaining)
	}
	if ok, _ := limiter.Allow("1.1.1.1"); !ok {
		t.Fatal("Expected second request allowed")
	}
	if ok, _ := limiter.Allow("1.1.1.1"); ok {
		t.Fatal("Expected third request rejected")
	}
	if ok, _ := limiter.Allow("2.2.2.2"); !ok {
		t.Error("Expected other client unaffected")
	}

	now = now.Add(2 * time.Minute)
	if ok, _ := limiter.Allow("1.1.1.1"); !ok {
		t.Error("Expected request allowed after window")
	}
}

func TestRateLimit_Rejects(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(NewRateLimiter(1, time.Minute)))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/x", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/x", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429, got %d", second.Code)
	}
}

func TestRequestContext_PropagatesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestContext(time.Second))

	var seen string
	var hasDeadline bool
	r.GET("/x", func(c *gin.Context) {
		seen = ctxutil.GetRequestID(c.Request.Context())
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(constants.HeaderXRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if seen != "req-123" {
		t.Errorf("Expected request id req-123 in context, got %q", seen)
	}
	if got := w.Header().Get(constants.HeaderXRequestID); got != "req-123" {
		t.Errorf("Expected echoed header, got %q", got)
	}
	if !hasDeadline {
		t.Error("Expected request context to carry a deadline")
	}
}

func TestRequestContext_GeneratesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestContext(0))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if len(w.Header().Get(constants.HeaderXRequestID)) != 36 {
		t.Errorf("Expected generated UUID, got %q", w.Header().Get(constants.HeaderXRequestID))
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", w.Code)
	}
}

func TestIsSuspiciousUserAgent(t *testing.T) {
	tests := []struct {
		ua   string
		want bool
	}{
		{"sqlmap/1.7", true},
		{"Mozilla/5.0", false},
		{"Nikto", true},
	}
	for _, tt := range tests {
		if got := isSuspiciousUserAgent(tt.ua); got != tt.want {
			t.Errorf("isSuspiciousUserAgent(%q) = %v, want %v", tt.ua, got, tt.want)
		}
	}
}
