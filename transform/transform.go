// Package transform implements the rigid-body coordinate transform: a
// translation and rotation between a named parent frame and a named child
// frame at a point in time, together with composition, inversion, and
// time interpolation.
package transform

import (
	"github.com/dHofmeister/transforms/quaternion"
	"github.com/dHofmeister/transforms/timestamp"
	"github.com/dHofmeister/transforms/vector3"
)

// machineEpsilon bounds the clock-skew tolerance in Compose.
const machineEpsilon = 2.220446049250313e-16

// Transform is a rigid-body transform from Parent to Child, valid at
// Timestamp. The zero Timestamp is reserved as the static-transform
// sentinel (see the buffer package).
type Transform struct {
	Translation vector3.Vector3
	Rotation    quaternion.Quaternion
	Timestamp   timestamp.Timestamp
	Parent      string
	Child       string
}

// Identity is the no-op transform: zero translation, identity rotation,
// zero timestamp, and empty frame names.
var Identity = Transform{
	Rotation: quaternion.Identity,
}

// Compose returns the transform t ⊗ o: applying o then t, yielding a
// transform from t.Parent to o.Child. It fails if the two timestamps
// diverge by more than a couple of machine epsilons, if the two
// transforms share a child frame, or if neither frame chains to the
// other (t.Child == o.Parent or t.Parent == o.Child). The result's
// timestamp is the midpoint of the two inputs' timestamps.
func (t Transform) Compose(o Transform) (Transform, error) {
	var duration timestamp.Duration
	var err error
	if t.Timestamp.After(o.Timestamp) {
		duration, err = t.Timestamp.SubTimestamp(o.Timestamp)
	} else {
		duration, err = o.Timestamp.SubTimestamp(t.Timestamp)
	}
	if err != nil {
		return Transform{}, err
	}

	durationSeconds, err := duration.AsSeconds()
	if err != nil {
		return Transform{}, err
	}
	if durationSeconds > 2*machineEpsilon {
		tSeconds, err := t.Timestamp.AsSeconds()
		if err != nil {
			return Transform{}, err
		}
		oSeconds, err := o.Timestamp.AsSeconds()
		if err != nil {
			return Transform{}, err
		}
		return Transform{}, &TimestampMismatchError{LHSSeconds: tSeconds, RHSSeconds: oSeconds}
	}

	if t.Child == o.Child {
		return Transform{}, ErrSameFrameMultiplication
	}
	if t.Child != o.Parent && t.Parent != o.Child {
		return Transform{}, ErrIncompatibleFrames
	}

	half, err := duration.DivFloat(2)
	if err != nil {
		return Transform{}, err
	}
	midTimestamp, err := t.Timestamp.Add(half)
	if err != nil {
		return Transform{}, err
	}

	return Transform{
		Translation: t.Rotation.RotateVector(o.Translation).Add(t.Translation),
		Rotation:    t.Rotation.Mul(o.Rotation),
		Timestamp:   midTimestamp,
		Parent:      t.Parent,
		Child:       o.Child,
	}, nil
}

// Inverse returns the transform from Child back to Parent at the same
// timestamp.
func (t Transform) Inverse() Transform {
	inverseRotation := t.Rotation.Conjugate()
	inverseTranslation := inverseRotation.RotateVector(t.Translation).Scale(-1)

	return Transform{
		Translation: inverseTranslation,
		Rotation:    inverseRotation,
		Timestamp:   t.Timestamp,
		Parent:      t.Child,
		Child:       t.Parent,
	}
}

// Interpolate returns the transform at timestamp, linearly interpolating
// translation and spherically interpolating rotation between from and to.
// from and to must share the same parent/child frames and from.Timestamp
// must not be after to.Timestamp, with timestamp falling in between; if
// the two endpoints share a timestamp, from is returned unchanged.
func Interpolate(from, to Transform, at timestamp.Timestamp) (Transform, error) {
	if from.Timestamp.After(to.Timestamp) || at.Before(from.Timestamp) || at.After(to.Timestamp) {
		fromSeconds, err := from.Timestamp.AsSeconds()
		if err != nil {
			return Transform{}, err
		}
		toSeconds, err := to.Timestamp.AsSeconds()
		if err != nil {
			return Transform{}, err
		}
		return Transform{}, &TimestampMismatchError{LHSSeconds: fromSeconds, RHSSeconds: toSeconds}
	}
	if from.Child != to.Child || from.Parent != to.Parent {
		return Transform{}, ErrIncompatibleFrames
	}

	span, err := to.Timestamp.SubTimestamp(from.Timestamp)
	if err != nil {
		return Transform{}, err
	}
	if span.Nanoseconds() == 0 {
		return from, nil
	}

	elapsed, err := at.SubTimestamp(from.Timestamp)
	if err != nil {
		return Transform{}, err
	}
	ratio := float64(elapsed.Nanoseconds()) / float64(span.Nanoseconds())

	return Transform{
		Translation: from.Translation.Scale(1 - ratio).Add(to.Translation.Scale(ratio)),
		Rotation:    from.Rotation.Slerp(to.Rotation, ratio),
		Timestamp:   at,
		Parent:      from.Parent,
		Child:       from.Child,
	}, nil
}

// Equal reports whether t and o are the same transform within an
// absolute tolerance on translation and rotation, ignoring timestamp.
func (t Transform) Equal(o Transform, tolerance float64) bool {
	return t.Parent == o.Parent &&
		t.Child == o.Child &&
		t.Translation.EqualAbs(o.Translation, tolerance) &&
		t.Rotation.Equal(o.Rotation, tolerance)
}

// Transformable is implemented by types that can have a Transform applied
// to them in place.
type Transformable interface {
	Apply(t Transform) error
}
