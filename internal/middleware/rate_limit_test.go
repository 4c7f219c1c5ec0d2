package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldgen-server/internal/shared/config"
)

func testRateLimiter(t *testing.T, cfg config.RateLimitConfig) *RateLimiter {
	t.Helper()

	config.GlobalConfig = &config.Config{RateLimit: cfg}
	return NewRateLimiter()
}

func hit(limiter *RateLimiter, remoteAddr string) *httptest.ResponseRecorder {
	var inner http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/final/random", nil)
	req.RemoteAddr = remoteAddr

	rec := httptest.NewRecorder()
	limiter.Middleware(inner).ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	limiter := testRateLimiter(t, config.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 1,
		BurstSize:         2,
	})

	assert.Equal(t, http.StatusOK, hit(limiter, "192.0.2.1:1234").Code)
	assert.Equal(t, http.StatusOK, hit(limiter, "192.0.2.1:1234").Code)
}

func TestRateLimiterBlocksBeyondBurst(t *testing.T) {
	limiter := testRateLimiter(t, config.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 1,
		BurstSize:         1,
	})

	require.Equal(t, http.StatusOK, hit(limiter, "192.0.2.1:1234").Code)

	rec := hit(limiter, "192.0.2.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	// A different client gets its own bucket
	assert.Equal(t, http.StatusOK, hit(limiter, "192.0.2.2:1234").Code)
}

func TestRateLimiterDisabledPassesEverything(t *testing.T) {
	limiter := testRateLimiter(t, config.RateLimitConfig{Enabled: false})

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(limiter, "192.0.2.1:1234").Code)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "192.0.2.1:1234",
			want:       "192.0.2.1",
		},
		{
			name:       "forwarded-for trusted",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.7, 10.0.0.1"},
			trustProxy: true,
			want:       "198.51.100.7",
		},
		{
			name:       "forwarded-for ignored without trust",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.7"},
			want:       "10.0.0.1",
		},
		{
			name:       "real-ip trusted",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Real-IP": "198.51.100.9"},
			trustProxy: true,
			want:       "198.51.100.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, getClientIP(req, tt.trustProxy))
		})
	}
}
