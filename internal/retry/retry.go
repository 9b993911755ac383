// Package retry provides linear-backoff retry logic for transient errors.
//
// Usage:
//
//	err := retry.Do(ctx, retry.Config{MaxAttempts: 3, Unit: time.Second}, func() error {
//	    return client.Call()
//	})
package retry

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Config controls the retry behaviour.
type Config struct {
	// MaxAttempts is the total number of attempts (including the first).
	// Zero or negative values are treated as 1 (no retries).
	MaxAttempts int
	// Unit is the backoff step. The wait after the n-th failed attempt is
	// n*Unit counting from zero, so the first retry happens immediately.
	Unit time.Duration
	// ShouldRetry is an optional predicate that lets callers classify errors
	// as retryable. When nil, all non-nil errors are retried.
	ShouldRetry func(err error) bool
}

// DefaultConfig matches the relay's fixed policy for completion calls.
var DefaultConfig = Config{
	MaxAttempts: 3,
	Unit:        time.Second,
}

// Do calls fn up to cfg.MaxAttempts times, waiting attempt*Unit between
// attempts. It stops early when ctx is cancelled or fn returns nil.
// The error from the last attempt is returned.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.Unit <= 0 {
		cfg.Unit = DefaultConfig.Unit
	}
	shouldRetry := cfg.ShouldRetry
	if shouldRetry == nil {
		shouldRetry = func(err error) bool { return true }
	}

	var lastErr error

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return errors.Join(lastErr, err)
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if !shouldRetry(lastErr) {
			return lastErr
		}

		if attempt < cfg.MaxAttempts-1 {
			delay := time.Duration(attempt) * cfg.Unit

			slog.Debug("retry: attempt failed, retrying",
				"attempt", attempt+1, "max", cfg.MaxAttempts,
				"err", lastErr, "delay", delay)

			if delay > 0 {
				select {
				case <-ctx.Done():
					return errors.Join(lastErr, ctx.Err())
				case <-time.After(delay):
				}
			}
		}
	}

	return lastErr
}
