package middleware

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/rs/zerolog"
)

// Limiter is satisfied by ratelimit.KeyedRateLimiter
type Limiter interface {
	Allow(key string) bool
}

// RateLimit rejects requests once the client IP runs out of tokens. It
// expects chi's RealIP middleware to have normalised RemoteAddr.
func RateLimit(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			if limiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			zerolog.Ctx(r.Context()).Warn().
				Str("client", key).
				Str("path", r.URL.Path).
				Msg("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]string{"error": "Too many requests"})
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
