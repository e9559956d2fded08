package transform

import (
	"github.com/dHofmeister/transforms/quaternion"
	"github.com/dHofmeister/transforms/timestamp"
	"github.com/dHofmeister/transforms/vector3"
)

// Point is a position and orientation in a named frame at a point in time.
// It is the reference Transformable: Apply moves it into the transform's
// parent frame.
type Point struct {
	Position    vector3.Vector3
	Orientation quaternion.Quaternion
	Timestamp   timestamp.Timestamp
	Frame       string
}

// Apply moves p from t.Child into t.Parent, rotating and translating
// Position and rotating Orientation in place. It fails with
// IncompatibleFramesError if p.Frame != t.Child, or TimestampMismatchError
// if p.Timestamp != t.Timestamp.
func (p *Point) Apply(t Transform) error {
	if p.Frame != t.Child {
		return ErrIncompatibleFrames
	}
	if !p.Timestamp.Equal(t.Timestamp) {
		pSeconds, err := p.Timestamp.AsSeconds()
		if err != nil {
			return err
		}
		tSeconds, err := t.Timestamp.AsSeconds()
		if err != nil {
			return err
		}
		return &TimestampMismatchError{LHSSeconds: pSeconds, RHSSeconds: tSeconds}
	}

	p.Position = t.Rotation.RotateVector(p.Position).Add(t.Translation)
	p.Orientation = t.Rotation.Mul(p.Orientation)
	p.Frame = t.Parent
	return nil
}
