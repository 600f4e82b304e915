// Package ratelimit bounds how often a keyed action may be attempted within a
// fixed window. It backs the e-mail verification attempt limit.
package ratelimit

import (
	"context"
	"time"
)

// AttemptLimiter decides whether another attempt for key is allowed at now.
// When the attempt is refused, retryAfter reports how long until the window resets.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string, now time.Time) (allowed bool, retryAfter time.Duration, err error)
}

// Resetter is implemented by limiters that can forget a key, e.g. after a successful verification.
type Resetter interface {
	Reset(ctx context.Context, key string) error
}
