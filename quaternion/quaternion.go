// Package quaternion implements unit-quaternion-oriented rotation algebra:
// norm, conjugate, multiply, vector rotation, and slerp.
package quaternion

import (
	"math"

	"github.com/dHofmeister/transforms/vector3"
)

// epsilon bounds the algebra's zero-length and small-angle checks.
const epsilon = 1e-9

// Identity is the rotation quaternion representing no rotation.
var Identity = Quaternion{W: 1}

// Quaternion is a four-component value interpreted as a rotation when
// unit-length: W is the scalar part, X/Y/Z the vector part.
type Quaternion struct {
	W, X, Y, Z float64
}

// Conjugate returns the conjugate of q.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// NormSquared returns the squared Euclidean norm of q.
func (q Quaternion) NormSquared() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Norm returns the Euclidean norm of q.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.NormSquared())
}

// Scale returns q scaled by factor.
func (q Quaternion) Scale(factor float64) Quaternion {
	return Quaternion{W: q.W * factor, X: q.X * factor, Y: q.Y * factor, Z: q.Z * factor}
}

// Add returns the component-wise sum of q and o.
func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{W: q.W + o.W, X: q.X + o.X, Y: q.Y + o.Y, Z: q.Z + o.Z}
}

// Normalize returns q scaled to unit length, failing with
// ZeroLengthNormalizationError if q's norm is below epsilon.
func (q Quaternion) Normalize() (Quaternion, error) {
	norm := q.Norm()
	if norm < epsilon {
		return Quaternion{}, ErrZeroLengthNormalization
	}
	return q.Scale(1 / norm), nil
}

// Mul returns the Hamilton product q * o. It is non-commutative.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Div returns q / o, equivalent to q * conj(o) / |o|^2, failing with
// DivisionByZeroError if o's squared norm is below epsilon.
func (q Quaternion) Div(o Quaternion) (Quaternion, error) {
	normSq := o.NormSquared()
	if normSq < epsilon {
		return Quaternion{}, ErrDivisionByZero
	}
	return q.Mul(o.Conjugate()).Scale(1 / normSq), nil
}

// RotateVector sandwiches v between q and its conjugate, assuming (but not
// checking) that q is unit length.
func (q Quaternion) RotateVector(v vector3.Vector3) vector3.Vector3 {
	qv := Quaternion{X: v.X, Y: v.Y, Z: v.Z}
	result := q.Mul(qv).Mul(q.Conjugate())
	return vector3.Vector3{X: result.X, Y: result.Y, Z: result.Z}
}

// Slerp performs spherical linear interpolation between q and o at ratio t
// in [0, 1]. It does not resolve the double-cover ambiguity (negating one
// endpoint when their dot product is negative) — this is an intentionally
// preserved characteristic of the reference behavior, not an oversight; for
// antipodal-ish inputs it can take the long way around the unit 3-sphere.
func (q Quaternion) Slerp(o Quaternion, t float64) Quaternion {
	dot := q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
	dot = math.Max(-1, math.Min(1, dot))
	theta := math.Acos(dot)

	if math.Abs(theta) < epsilon {
		return q.Scale(1 - t).Add(o.Scale(t))
	}

	sinTheta := math.Sin(theta)
	scaleSelf := math.Sin((1-t)*theta) / sinTheta
	scaleOther := math.Sin(t*theta) / sinTheta
	return q.Scale(scaleSelf).Add(o.Scale(scaleOther))
}

// Equal reports whether q and o are equal within an absolute per-component
// tolerance.
func (q Quaternion) Equal(o Quaternion, tolerance float64) bool {
	return math.Abs(q.W-o.W) <= tolerance &&
		math.Abs(q.X-o.X) <= tolerance &&
		math.Abs(q.Y-o.Y) <= tolerance &&
		math.Abs(q.Z-o.Z) <= tolerance
}
