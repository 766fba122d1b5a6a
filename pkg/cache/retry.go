package cache

import (
	"context"
	"errors"
	"time"
)

// transientError marks a failure that may succeed on a later attempt.
type transientError struct{ err error }

func (e transientError) Error() string { return e.err.Error() }
func (e transientError) Unwrap() error { return e.err }

// transient wraps err so retryPolicy.run tries again. nil stays nil.
func transient(err error) error {
	if err == nil {
		return nil
	}
	return transientError{err: err}
}

func isTransient(err error) bool {
	var te transientError
	return errors.As(err, &te)
}

// retryPolicy runs an operation up to attempts times, doubling the pause
// after each transient failure.
type retryPolicy struct {
	attempts int
	delay    time.Duration
}

// connectRetry is used when dialing Redis.
var connectRetry = retryPolicy{attempts: 3, delay: time.Second}

// run calls fn until it succeeds, returns a non-transient error, or the
// attempts are used up. fn receives the 1-based attempt number.
func (p retryPolicy) run(ctx context.Context, fn func(attempt int) error) error {
	delay := p.delay
	for attempt := 1; ; attempt++ {
		err := fn(attempt)
		if err == nil || !isTransient(err) || attempt >= p.attempts {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}
