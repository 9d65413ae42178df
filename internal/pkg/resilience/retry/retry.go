// Package retry wraps avast/retry-go behind a small interface with
// functional options. Delays grow exponentially between attempts.
//
//	r := retry.New(
//	    retry.WithAttempts(5),
//	    retry.WithDelay(200*time.Millisecond),
//	)
//	err := r.Execute(ctx, func() error {
//	    return conn.Ping(ctx).Err()
//	})
//
// Only wrap idempotent operations: the unspent index mutations are
// read-modify-write sequences and must not be retried blindly.
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry runs an operation until it succeeds, the attempts are exhausted or
// the context is done.
type Retry interface {
	// Execute runs operation with the configured retry policy and returns nil
	// on the first success. Otherwise it returns the last error (or all of
	// them, see WithLastErrorOnly), or the context error if ctx ends first.
	Execute(ctx context.Context, operation func() error) error
}

// config holds the retry policy.
type config struct {
	attempts    uint          // total attempts, including the first
	delay       time.Duration // base delay before the first retry
	maxDelay    time.Duration // cap on the backoff delay
	lastErrOnly bool          // return only the final error
	onRetry     func(attempt uint, err error)
}

// Option customizes the retry policy.
type Option func(*config)

// retrier implements Retry with retry-go.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry.
var _ Retry = (*retrier)(nil)

// New returns a Retry with the given options applied over the defaults:
// 3 attempts, 1s base delay, 5s max delay, last error only.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(r.cfg.onRetry))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the total number of attempts, including the first one.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay before the first retry.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential backoff.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly chooses between returning the final error (true) or all
// attempt errors combined (false).
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers a callback invoked after each failed attempt.
// attempt is zero based.
func WithOnRetry(fn func(attempt uint, err error)) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}
