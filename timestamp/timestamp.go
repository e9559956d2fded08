// Package timestamp implements monotonic point-in-time and interval
// arithmetic for the transform registry: Timestamp (nanoseconds since a
// fixed epoch) and Duration (a non-negative span of nanoseconds).
package timestamp

import (
	"math"
	"time"
)

const nanosPerSecond = 1e9

// Timestamp is a non-negative count of nanoseconds since a fixed epoch. It
// is totally ordered by its underlying value.
type Timestamp struct {
	nanoseconds uint64
}

// Now returns the current wall-clock time as a Timestamp.
func Now() Timestamp {
	return Timestamp{nanoseconds: uint64(time.Now().UnixNano())}
}

// Zero returns the literal Timestamp value 0, reserved as the static-
// transform sentinel (see the buffer package).
func Zero() Timestamp {
	return Timestamp{}
}

// FromNanoseconds builds a Timestamp directly from a nanosecond count.
func FromNanoseconds(nanoseconds uint64) Timestamp {
	return Timestamp{nanoseconds: nanoseconds}
}

// Nanoseconds returns the raw nanosecond count.
func (t Timestamp) Nanoseconds() uint64 {
	return t.nanoseconds
}

// IsZero reports whether t is the static-transform sentinel timestamp.
func (t Timestamp) IsZero() bool {
	return t.nanoseconds == 0
}

// Before reports whether t is strictly earlier than o.
func (t Timestamp) Before(o Timestamp) bool {
	return t.nanoseconds < o.nanoseconds
}

// After reports whether t is strictly later than o.
func (t Timestamp) After(o Timestamp) bool {
	return t.nanoseconds > o.nanoseconds
}

// Equal reports whether t and o name the same instant.
func (t Timestamp) Equal(o Timestamp) bool {
	return t.nanoseconds == o.nanoseconds
}

// AsSeconds converts t to floating-point seconds, returning an
// AccuracyLossError if the float64 value does not round-trip back to the
// exact nanosecond count.
func (t Timestamp) AsSeconds() (float64, error) {
	seconds := float64(t.nanoseconds) / nanosPerSecond
	if uint64(seconds*nanosPerSecond) != t.nanoseconds {
		return 0, &AccuracyLossError{Nanoseconds: t.nanoseconds}
	}
	return seconds, nil
}

// AsSecondsLossy converts t to floating-point seconds without checking for
// accuracy loss.
func (t Timestamp) AsSecondsLossy() float64 {
	return float64(t.nanoseconds) / nanosPerSecond
}

// Add returns t + d, failing with DurationOverflowError if the result would
// exceed the representable range.
func (t Timestamp) Add(d Duration) (Timestamp, error) {
	result := t.nanoseconds + d.nanoseconds
	if result < t.nanoseconds {
		return Timestamp{}, ErrDurationOverflow
	}
	return Timestamp{nanoseconds: result}, nil
}

// Sub returns t - d, failing with DurationUnderflowError if d exceeds t.
func (t Timestamp) Sub(d Duration) (Timestamp, error) {
	if d.nanoseconds > t.nanoseconds {
		return Timestamp{}, ErrDurationUnderflow
	}
	return Timestamp{nanoseconds: t.nanoseconds - d.nanoseconds}, nil
}

// SubTimestamp returns the Duration between o and t (t - o), failing with
// DurationUnderflowError if o is later than t.
func (t Timestamp) SubTimestamp(o Timestamp) (Duration, error) {
	if o.nanoseconds > t.nanoseconds {
		return Duration{}, ErrDurationUnderflow
	}
	return Duration{nanoseconds: t.nanoseconds - o.nanoseconds}, nil
}

// Duration is a non-negative count of nanoseconds.
type Duration struct {
	nanoseconds uint64
}

// NewDurationFromSeconds builds a Duration from a floating-point number of
// seconds, failing on NaN, infinities, negative values, overflow of the
// representable range, or loss of accuracy in the nanosecond conversion.
func NewDurationFromSeconds(seconds float64) (Duration, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return Duration{}, &InvalidDurationError{Reason: "must be finite"}
	}
	if seconds < 0 {
		return Duration{}, &InvalidDurationError{Reason: "must not be negative"}
	}

	nanos := seconds * nanosPerSecond
	if nanos > math.MaxUint64 {
		return Duration{}, ErrDurationOverflow
	}

	nanosU64 := uint64(nanos)
	if float64(nanosU64) != nanos {
		return Duration{}, &AccuracyLossError{Nanoseconds: nanosU64}
	}

	return Duration{nanoseconds: nanosU64}, nil
}

// NewDurationFromStdlib converts a standard library time.Duration to a
// Duration. d must be non-negative; a negative d panics rather than
// returning an error.
func NewDurationFromStdlib(d time.Duration) Duration {
	if d < 0 {
		panic("timestamp: NewDurationFromStdlib: negative duration")
	}
	return Duration{nanoseconds: uint64(d)}
}

// DurationFromNanoseconds builds a Duration directly from a nanosecond count.
func DurationFromNanoseconds(nanoseconds uint64) Duration {
	return Duration{nanoseconds: nanoseconds}
}

// Nanoseconds returns the raw nanosecond count.
func (d Duration) Nanoseconds() uint64 {
	return d.nanoseconds
}

// AsSeconds converts d to floating-point seconds, returning an
// AccuracyLossError if the float64 value does not round-trip back to the
// exact nanosecond count.
func (d Duration) AsSeconds() (float64, error) {
	seconds := float64(d.nanoseconds) / nanosPerSecond
	if uint64(seconds*nanosPerSecond) != d.nanoseconds {
		return 0, &AccuracyLossError{Nanoseconds: d.nanoseconds}
	}
	return seconds, nil
}

// DivFloat divides d by a positive scalar, failing with
// DivisionByZeroError if the divisor is not strictly positive.
func (d Duration) DivFloat(divisor float64) (Duration, error) {
	if divisor <= 0 {
		return Duration{}, ErrDivisionByZero
	}
	return Duration{nanoseconds: uint64(float64(d.nanoseconds) / divisor)}, nil
}
