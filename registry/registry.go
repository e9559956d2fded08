// Package registry implements the time-indexed forest of transform
// buffers, resolving transforms between any two named frames by walking
// each frame's ancestor chain to their common parent and composing the
// result.
//
// Two concrete types cover the library's two operating modes: Registry
// requires the caller to provide exclusive access (no internal locking,
// matching a single-owner/&mut-self style of use), while AsyncRegistry
// adds its own mutex and a wakeup channel so multiple goroutines can
// share it and block until a transform becomes available.
package registry

import (
	"github.com/dHofmeister/transforms/internal/telemetry"
	"github.com/dHofmeister/transforms/timestamp"
	"github.com/dHofmeister/transforms/transform"
)

// Option configures a Registry or AsyncRegistry at construction time.
type Option func(*config)

type config struct {
	logger telemetry.Logger
}

// WithLogger attaches a structured logger to a registry. Each
// AddTransform logs one Info event naming the child and parent frames;
// the default is a disabled no-op logger.
func WithLogger(logger telemetry.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	c := config{logger: telemetry.Disabled()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Registry is the single-owner transform registry: its methods assume
// the caller does not access it concurrently from multiple goroutines,
// the same way a Rust type behind a plain &mut self reference would.
// Use AsyncRegistry when that guarantee cannot be made.
type Registry struct {
	data   frameData
	maxAge timestamp.Duration
	logger telemetry.Logger
}

// New returns an empty Registry that evicts transforms older than maxAge.
func New(maxAge timestamp.Duration, opts ...Option) *Registry {
	c := newConfig(opts)
	return &Registry{
		data:   make(frameData),
		maxAge: maxAge,
		logger: c.logger,
	}
}

// AddTransform records t, keyed by its child frame.
func (r *Registry) AddTransform(t transform.Transform) error {
	addTransform(r.data, t, r.maxAge)
	r.logger.Info().Str("child", t.Child).Str("parent", t.Parent).Log("transform added")
	return nil
}

// GetTransform resolves the transform from frame "from" to frame "to" at
// timestamp at, returning NotFoundError if no chain connects them.
func (r *Registry) GetTransform(from, to string, at timestamp.Timestamp) (transform.Transform, error) {
	return getTransform(r.data, from, to, at)
}
