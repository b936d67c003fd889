package http

import (
	"context"
	"time"

	"credit-simulator/logger"
	"credit-simulator/repository"
)

// SharedRateLimiter enforces a fixed-window budget through a WindowCounter,
// so every instance behind a load balancer draws from the same budget.
type SharedRateLimiter struct {
	counter repository.WindowCounter
	limit   int64
	window  time.Duration
	log     *logger.Logger
}

func NewSharedRateLimiter(counter repository.WindowCounter, limit int, window time.Duration, log *logger.Logger) *SharedRateLimiter {
	return &SharedRateLimiter{
		counter: counter,
		limit:   int64(limit),
		window:  window,
		log:     log,
	}
}

// Allow fails open when the counter backend is unavailable.
func (s *SharedRateLimiter) Allow(ctx context.Context, key string) bool {
	count, err := s.counter.Increment(ctx, key, s.window)
	if err != nil {
		s.log.Warn("rate limit backend unavailable, allowing request", "error", err)
		return true
	}
	return count <= s.limit
}
