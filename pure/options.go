package pure

import (
	"go.uber.org/zap"
)

// Option configures a memoized function at wrap time.
type Option func(*config)

// config is resolved once per wrapper and never mutated afterwards.
type config struct {
	logger    *zap.Logger
	name      string
	strict    bool
	observers []Observer
}

// WithLogger sets the logger used for wrapper diagnostics.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithName labels the wrapper in logs, events and metrics.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithStrict serializes concurrent misses on the same key, so the computation
// runs at most once per key even under concurrent first calls.
//
// The per-key lock is held while the computation runs. A computation that
// calls its own wrapper with the same key will deadlock.
func WithStrict() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithObserver registers an Observer notified of every hit, miss and computation.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithStats records the wrapper's activity into s.
// The same Stats may be shared by several wrappers.
func WithStats(s *Stats) Option {
	return WithObserver(s)
}

func newConfig(opts []Option) config {
	c := config{
		logger: zap.NewNop(),
		name:   "anonymous",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
