// Package buffer implements a time-ordered, single-frame-pair store of
// transforms with age-based eviction and a static-transform mode.
package buffer

import (
	"sort"

	"github.com/dHofmeister/transforms/timestamp"
	"github.com/dHofmeister/transforms/transform"
	"golang.org/x/exp/constraints"
)

// lowerBound returns the index of the first of n elements (accessed via
// key) whose key is >= target, or n if none qualify.
func lowerBound[K constraints.Ordered](n int, key func(int) K, target K) int {
	return sort.Search(n, func(i int) bool {
		return key(i) >= target
	})
}

type entry struct {
	timestamp timestamp.Timestamp
	transform transform.Transform
}

// Buffer stores the time history of transforms between a single parent
// and child frame, evicting entries older than maxAge on every non-static
// insert.
type Buffer struct {
	entries  []entry
	maxAge   timestamp.Duration
	isStatic bool
}

// New returns an empty Buffer that evicts entries older than maxAge.
func New(maxAge timestamp.Duration) *Buffer {
	return &Buffer{maxAge: maxAge}
}

// Insert records transform, keyed by its timestamp. A zero timestamp
// places the Buffer in static mode, where Get always returns that single
// transform regardless of the requested time; inserting a later non-zero
// timestamp takes the Buffer back out of static mode. Every non-static
// insert also evicts entries older than maxAge relative to wall-clock now.
func (b *Buffer) Insert(t transform.Transform) {
	b.isStatic = t.Timestamp.IsZero()

	i := b.search(t.Timestamp)
	if i < len(b.entries) && b.entries[i].timestamp.Equal(t.Timestamp) {
		b.entries[i].transform = t
	} else {
		b.entries = append(b.entries, entry{})
		copy(b.entries[i+1:], b.entries[i:])
		b.entries[i] = entry{timestamp: t.Timestamp, transform: t}
	}

	if !b.isStatic {
		b.deleteExpired()
	}
}

// Get returns the transform at timestamp at, interpolating between the
// nearest bracketing entries if an exact match is not stored. In static
// mode, the transform stored at timestamp zero is returned regardless of at. It
// fails with NoTransformAvailableError if no transform (or no bracketing
// pair) is available.
func (b *Buffer) Get(at timestamp.Timestamp) (transform.Transform, error) {
	if b.isStatic {
		i := b.search(timestamp.Zero())
		if i < len(b.entries) && b.entries[i].timestamp.IsZero() {
			return b.entries[i].transform, nil
		}
		return transform.Transform{}, ErrNoTransformAvailable
	}

	afterIdx := b.search(at)

	beforeIdx := afterIdx - 1
	if afterIdx < len(b.entries) && b.entries[afterIdx].timestamp.Equal(at) {
		beforeIdx = afterIdx
	}

	haveBefore := beforeIdx >= 0 && beforeIdx < len(b.entries)
	haveAfter := afterIdx < len(b.entries)
	if !haveBefore || !haveAfter {
		return transform.Transform{}, ErrNoTransformAvailable
	}

	result, err := transform.Interpolate(b.entries[beforeIdx].transform, b.entries[afterIdx].transform, at)
	if err != nil {
		return transform.Transform{}, err
	}
	return result, nil
}

// search returns the index of the first entry whose timestamp is >= at.
func (b *Buffer) search(at timestamp.Timestamp) int {
	return lowerBound(len(b.entries), func(i int) uint64 {
		return b.entries[i].timestamp.Nanoseconds()
	}, at.Nanoseconds())
}

func (b *Buffer) deleteExpired() {
	threshold, err := timestamp.Now().Sub(b.maxAge)
	if err != nil {
		return
	}
	i := b.search(threshold)
	b.entries = b.entries[i:]
}
