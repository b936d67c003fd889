package http

import (
	"context"
	"net"
	"net/http"

	"credit-simulator/logger"
)

// Limiter decides whether a client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

func RateLimitMiddleware(
	limiter Limiter,
	log *logger.Logger,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !limiter.Allow(r.Context(), ip) {
			writeJSON(w, log, http.StatusTooManyRequests, errorEnvelope{
				Error: errorBody{Message: "rate limit exceeded", Code: codeRateLimited},
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
