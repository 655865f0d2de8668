package middleware

import (
	"net/http"
	"time"

	"caregiver-marketplace/pkg/response"

	"github.com/go-chi/httprate"
)

// NewRateLimiter limits each client IP to requests per window
func NewRateLimiter(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			response.Error(w, http.StatusTooManyRequests, "Too many requests, please try again later", nil)
		}),
	)
}
