// Package retry provides an explicit retry policy for store operations. The
// scoring core performs no I/O and never retries; repositories apply a Policy
// at each store call site instead of wrapping arbitrary functions.
package retry

import (
	"context"
	"errors"
	"time"
)

// Policy describes how many times to attempt an operation and how long to
// wait between attempts.
type Policy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
}

// DefaultPolicy retries twice after the first failure with exponential
// backoff starting at 100ms.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		Backoff:     ExponentialBackoff(100 * time.Millisecond),
	}
}

// NoRetry runs the operation exactly once.
func NoRetry() Policy {
	return Policy{MaxAttempts: 1}
}

// ExponentialBackoff doubles the base delay per attempt: base, 2*base, ...
func ExponentialBackoff(base time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		d := base
		for i := 1; i < attempt; i++ {
			d *= 2
		}
		return d
	}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks an error as not worth retrying, e.g. a not-found result.
// Do returns the wrapped error immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Do runs op until it succeeds, returns a permanent error, the attempts are
// exhausted, or the context ends. The last error is returned unwrapped.
func (p Policy) Do(ctx context.Context, op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := op()
		if err == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		lastErr = err

		if attempt == attempts {
			break
		}

		delay := time.Duration(0)
		if p.Backoff != nil {
			delay = p.Backoff(attempt)
		}
		if delay <= 0 {
			continue
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}
