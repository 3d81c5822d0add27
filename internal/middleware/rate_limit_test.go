package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLimit_ExhaustsBurstPerIP(t *testing.T) {
	t.Parallel()

	h := Limit(1, 2, time.Minute, testLogger())(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
		req.RemoteAddr = "203.0.113.7:51000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request should be limited, got %v", codes)
	}

	// A different address has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	req.RemoteAddr = "203.0.113.8:51000"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("fresh ip should pass, got %d", rr.Code)
	}
}

func TestLimit_NoPortInRemoteAddr(t *testing.T) {
	t.Parallel()

	h := Limit(10, 10, time.Minute, testLogger())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	req.RemoteAddr = "203.0.113.9"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

// Hammers one visitor from many goroutines so the race detector can see
// the lastSeen update and the cleanup loop's read on the same lock.
func TestLimit_ConcurrentSameIP(t *testing.T) {
	t.Parallel()

	h := Limit(1000, 1000, time.Minute, testLogger())(okHandler())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
				req.RemoteAddr = "203.0.113.10:51000"
				rr := httptest.NewRecorder()
				h.ServeHTTP(rr, req)
			}
		}()
	}
	wg.Wait()
}
