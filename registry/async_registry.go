package registry

import (
	"context"
	"sync"

	"github.com/dHofmeister/transforms/internal/telemetry"
	"github.com/dHofmeister/transforms/timestamp"
	"github.com/dHofmeister/transforms/transform"
)

// AsyncRegistry is the cooperative, mutex-guarded transform registry. Its
// methods are safe to call from multiple goroutines; AwaitTransform blocks
// until a matching transform becomes available or ctx is done.
type AsyncRegistry struct {
	mu     sync.Mutex
	data   frameData
	maxAge timestamp.Duration
	logger telemetry.Logger

	notifyMu sync.Mutex
	notifyCh chan struct{}
}

// NewAsync returns an empty AsyncRegistry that evicts transforms older
// than maxAge.
func NewAsync(maxAge timestamp.Duration, opts ...Option) *AsyncRegistry {
	c := newConfig(opts)
	return &AsyncRegistry{
		data:     make(frameData),
		maxAge:   maxAge,
		logger:   c.logger,
		notifyCh: make(chan struct{}),
	}
}

// AddTransform records t, keyed by its child frame, and wakes any
// goroutines blocked in AwaitTransform.
func (r *AsyncRegistry) AddTransform(t transform.Transform) error {
	r.mu.Lock()
	addTransform(r.data, t, r.maxAge)
	r.mu.Unlock()

	r.logger.Info().Str("child", t.Child).Str("parent", t.Parent).Log("transform added")
	r.wakeWaiters()
	return nil
}

// GetTransform resolves the transform from frame "from" to frame "to" at
// timestamp at, returning NotFoundError if no chain connects them.
func (r *AsyncRegistry) GetTransform(from, to string, at timestamp.Timestamp) (transform.Transform, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getTransform(r.data, from, to, at)
}

// AwaitTransform blocks until the transform from "from" to "to" at
// timestamp at becomes available, or ctx is done. It retries on every
// AddTransform call rather than polling, using a register-then-check
// pattern: the wakeup channel is captured under the same lock used for
// the lookup, so an AddTransform that lands between the check and the
// wait can never be missed.
func (r *AsyncRegistry) AwaitTransform(ctx context.Context, from, to string, at timestamp.Timestamp) (transform.Transform, error) {
	for {
		r.mu.Lock()
		tf, err := getTransform(r.data, from, to, at)
		waitCh := r.currentNotifyCh()
		r.mu.Unlock()

		if err == nil {
			return tf, nil
		}

		select {
		case <-waitCh:
		case <-ctx.Done():
			return transform.Transform{}, ctx.Err()
		}
	}
}

func (r *AsyncRegistry) currentNotifyCh() chan struct{} {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()
	return r.notifyCh
}

func (r *AsyncRegistry) wakeWaiters() {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()
	close(r.notifyCh)
	r.notifyCh = make(chan struct{})
}
