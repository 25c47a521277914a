package limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"
)

func hit(handler http.Handler, remoteAddr string) int {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.RemoteAddr = remoteAddr
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestMiddlewareRejectsAfterBurst(t *testing.T) {
	// Zero refill rate: only the burst tokens are ever available.
	l := NewIPRateLimiter(rate.Limit(0), 2)

	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		if code := hit(handler, "203.0.113.7:51000"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i+1, code, http.StatusOK)
		}
	}

	if code := hit(handler, "203.0.113.7:51000"); code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d once the burst is spent", code, http.StatusTooManyRequests)
	}
}

func TestMiddlewareTracksIPsIndependently(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(0), 1)

	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	if code := hit(handler, "203.0.113.7:51000"); code != http.StatusOK {
		t.Fatalf("first ip: status = %d, want %d", code, http.StatusOK)
	}
	if code := hit(handler, "203.0.113.7:51001"); code != http.StatusTooManyRequests {
		t.Fatalf("same ip, new port: status = %d, want %d", code, http.StatusTooManyRequests)
	}
	if code := hit(handler, "203.0.113.8:51000"); code != http.StatusOK {
		t.Fatalf("different ip: status = %d, want %d", code, http.StatusOK)
	}
}
