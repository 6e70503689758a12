package retry

import (
	"context"
	"time"
)

// Defaults chosen for LLM provider calls: up to 3 retries after the
// initial attempt, waiting 1s, 2s, 4s between attempts.
const (
	DefaultMaxRetries  = 3
	DefaultBaseWait    = time.Second
	DefaultBackoffRate = 2.0
)

type config struct {
	maxRetries  int
	baseWait    time.Duration
	backoffRate float64
}

// Option configures a call to Do.
type Option func(*config)

// WithMaxRetries sets the number of retries after the first attempt.
// A value of 0 means the function runs exactly once.
func WithMaxRetries(n int) Option {
	return func(c *config) { c.maxRetries = n }
}

// WithBaseWait sets the wait before the first retry. Each subsequent
// wait is multiplied by the backoff rate.
func WithBaseWait(d time.Duration) Option {
	return func(c *config) { c.baseWait = d }
}

// WithBackoffRate sets the multiplier applied to the wait between
// consecutive retries.
func WithBackoffRate(rate float64) Option {
	return func(c *config) { c.backoffRate = rate }
}

// Do runs fn until it succeeds, returns a non-recoverable error, or the
// retry budget is exhausted. The last error from fn is returned as-is so
// callers can classify it.
func Do(ctx context.Context, fn func() error, opts ...Option) error {
	c := &config{
		maxRetries:  DefaultMaxRetries,
		baseWait:    DefaultBaseWait,
		backoffRate: DefaultBackoffRate,
	}
	for _, opt := range opts {
		opt(c)
	}
	var err error
	wait := c.baseWait
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			wait = time.Duration(float64(wait) * c.backoffRate)
		}
		if err = fn(); err == nil {
			return nil
		}
		if !IsRecoverable(err) {
			return err
		}
	}
	return err
}
