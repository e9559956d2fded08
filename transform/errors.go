package transform

import "fmt"

// TimestampMismatchError is returned when composing or interpolating
// transforms whose timestamps are incompatible with the operation.
type TimestampMismatchError struct {
	LHSSeconds, RHSSeconds float64
}

func (e *TimestampMismatchError) Error() string {
	return fmt.Sprintf("transform: timestamp mismatch: %.9f vs %.9f seconds", e.LHSSeconds, e.RHSSeconds)
}

// SameFrameMultiplicationError is returned when composing two transforms
// that share the same child frame.
type SameFrameMultiplicationError struct{}

func (e *SameFrameMultiplicationError) Error() string {
	return "transform: cannot compose two transforms with the same child frame"
}

// ErrSameFrameMultiplication is the sentinel instance of
// SameFrameMultiplicationError, matching via errors.Is.
var ErrSameFrameMultiplication = &SameFrameMultiplicationError{}

// IncompatibleFramesError is returned when composing or interpolating
// transforms whose parent/child frames do not chain or match.
type IncompatibleFramesError struct{}

func (e *IncompatibleFramesError) Error() string {
	return "transform: incompatible parent/child frames"
}

// ErrIncompatibleFrames is the sentinel instance of IncompatibleFramesError,
// matching via errors.Is.
var ErrIncompatibleFrames = &IncompatibleFramesError{}
