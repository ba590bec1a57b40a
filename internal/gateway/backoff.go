package gateway

import (
	"context"
	"math"
	"time"
)

const (
	DefaultMaxAttempts = 5
	DefaultBaseDelay   = 500 * time.Millisecond
	DefaultDialTimeout = 5 * time.Second
)

// RetryPolicy bounds the initial connect loop. MaxAttempts counts retries, so a
// backend that never accepts is dialed MaxAttempts+1 times.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy matches the gateway's historical constants.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: DefaultMaxAttempts,
	BaseDelay:   DefaultBaseDelay,
}

// maxDelay is where Delay saturates instead of overflowing.
const maxDelay = time.Duration(math.MaxInt64)

// Delay returns base * 2^attempt for a 0-indexed attempt, saturating at maxDelay.
func Delay(base time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return base
	}
	if attempt >= 63 || base > maxDelay>>uint(attempt) {
		return maxDelay
	}
	return base << uint(attempt)
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
