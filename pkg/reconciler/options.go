package reconciler

import "time"

// Option configures a Reconciler.
type Option func(*options)

// options holds reconciler configuration.
type options struct {
	now func() time.Time
}

// newOptions applies options over defaults.
func newOptions(opts ...Option) *options {
	o := &options{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithClock overrides the clock used to stamp conflict detection times.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
