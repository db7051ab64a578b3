package ratelimit

import (
	"context"
	"time"
)

// Limit allows Requests per sliding Window.
type Limit struct {
	Requests int
	Window   time.Duration
}

type RateLimiter interface {
	// Allow records a request for key and reports whether it fits the limit,
	// with the number of requests still available in the window.
	Allow(ctx context.Context, key string, limit Limit) (bool, int, error)
	Reset(ctx context.Context, key string) error
}
