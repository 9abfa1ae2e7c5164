package ports

import (
	"context"
	"time"
)

// IdempotencyStore remembers client-supplied request keys for a limited time.
type IdempotencyStore interface {
	// Reserve records key and reports false when it was already held.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release forgets key so the request can be retried.
	Release(ctx context.Context, key string) error
}
