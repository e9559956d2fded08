package quaternion

import (
	"errors"
	"math"
	"testing"

	"github.com/dHofmeister/transforms/vector3"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	require.Equal(t, Quaternion{W: 1}, Identity)
}

func TestConjugate(t *testing.T) {
	q := Quaternion{W: 1, X: 2, Y: 3, Z: 4}
	require.Equal(t, Quaternion{W: 1, X: -2, Y: -3, Z: -4}, q.Conjugate())
}

func TestNorm(t *testing.T) {
	q := Quaternion{W: 0, X: 3, Y: 4, Z: 0}
	require.Equal(t, 25.0, q.NormSquared())
	require.Equal(t, 5.0, q.Norm())
}

func TestNormalize(t *testing.T) {
	q := Quaternion{W: 0, X: 3, Y: 4, Z: 0}
	n, err := q.Normalize()
	require.NoError(t, err)
	require.InDelta(t, 1.0, n.Norm(), 1e-12)
}

func TestNormalize_ZeroLength(t *testing.T) {
	_, err := Quaternion{}.Normalize()
	require.Error(t, err)
	var zeroErr *ZeroLengthNormalizationError
	require.ErrorAs(t, err, &zeroErr)
	require.True(t, errors.Is(err, ErrZeroLengthNormalization))
}

func TestMul_Identity(t *testing.T) {
	q := Quaternion{W: 0.5, X: 0.5, Y: 0.5, Z: 0.5}
	require.Equal(t, q, q.Mul(Identity))
	require.Equal(t, q, Identity.Mul(q))
}

func TestMul_NonCommutative(t *testing.T) {
	a := Quaternion{W: 0, X: 1, Y: 0, Z: 0}
	b := Quaternion{W: 0, X: 0, Y: 1, Z: 0}
	ab := a.Mul(b)
	ba := b.Mul(a)
	require.NotEqual(t, ab, ba)
	require.Equal(t, Quaternion{W: 0, X: 0, Y: 0, Z: 1}, ab)
	require.Equal(t, Quaternion{W: 0, X: 0, Y: 0, Z: -1}, ba)
}

func TestDiv_ZeroDivisor(t *testing.T) {
	_, err := Quaternion{W: 1}.Div(Quaternion{})
	require.Error(t, err)
	var divErr *DivisionByZeroError
	require.ErrorAs(t, err, &divErr)
	require.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestDiv_Inverse(t *testing.T) {
	a := Quaternion{W: 1, X: 2, Y: 3, Z: 4}
	result, err := a.Div(a)
	require.NoError(t, err)
	require.True(t, result.Equal(Identity, 1e-9))
}

func TestRotateVector_90DegreesAboutZ(t *testing.T) {
	half := math.Pi / 4
	q := Quaternion{W: math.Cos(half), X: 0, Y: 0, Z: math.Sin(half)}
	v := vector3.Vector3{X: 1, Y: 0, Z: 0}
	rotated := q.RotateVector(v)
	require.True(t, rotated.EqualAbs(vector3.Vector3{X: 0, Y: 1, Z: 0}, 1e-9))
}

func TestSlerp_Endpoints(t *testing.T) {
	half := math.Pi / 4
	a := Identity
	b := Quaternion{W: math.Cos(half), X: 0, Y: 0, Z: math.Sin(half)}

	require.True(t, a.Slerp(b, 0).Equal(a, 1e-9))
	require.True(t, a.Slerp(b, 1).Equal(b, 1e-9))
}

func TestSlerp_Midpoint(t *testing.T) {
	quarter := math.Pi / 8
	half := math.Pi / 4
	a := Identity
	b := Quaternion{W: math.Cos(half), X: 0, Y: 0, Z: math.Sin(half)}
	mid := a.Slerp(b, 0.5)
	expected := Quaternion{W: math.Cos(quarter), X: 0, Y: 0, Z: math.Sin(quarter)}
	require.True(t, mid.Equal(expected, 1e-9))
}

func TestSlerp_SmallAngleFallback(t *testing.T) {
	a := Identity
	b := Quaternion{W: 1, X: 1e-12, Y: 0, Z: 0}
	mid := a.Slerp(b, 0.5)
	require.True(t, mid.Equal(a.Scale(0.5).Add(b.Scale(0.5)), 1e-9))
}

func TestEqual(t *testing.T) {
	a := Quaternion{W: 1, X: 2, Y: 3, Z: 4}
	b := Quaternion{W: 1.0000001, X: 2, Y: 3, Z: 4}
	require.True(t, a.Equal(b, 1e-6))
	require.False(t, a.Equal(b, 1e-8))
}
