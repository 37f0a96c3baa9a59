package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/dynamicweb/dynamicweb/internal/api/response"
)

// RateLimit rejects requests with 429 once limiter has no tokens left.
// Requests that pass consume one token.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := limiter.Reserve()
			if !res.OK() || res.Delay() > 0 {
				delay := res.Delay()
				res.Cancel()

				requestID := GetRequestID(r.Context())
				slog.Warn("rate limit exceeded", "path", r.URL.Path, "requestId", requestID)
				if delay > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				}
				response.Err(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please slow down.", requestID)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PerMinute builds a limiter allowing n requests per minute with the given burst.
func PerMinute(n, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(float64(n)/60), burst)
}
