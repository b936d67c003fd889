package repository

import (
	"context"
	"time"
)

// WindowCounter counts hits per key inside fixed windows. Increment returns
// the count for the current window including this hit.
type WindowCounter interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}
