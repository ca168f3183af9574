package svgmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2[float64]{1, 2}
	b := Vec2[float64]{3, -4}
	c := Vec2[float64]{-5, 0.5}

	assert.Equal(t, Vec2[float64]{4, -2}, a.Add(b))
	assert.Equal(t, a.Add(b), b.Add(a))
	assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))
	assert.Equal(t, a, a.Add(Vec2[float64]{}))
	assert.Equal(t, Vec2[float64]{}, a.Add(a.Neg()))
	assert.Equal(t, Vec2[float64]{-2, 6}, a.Sub(b))
	assert.Equal(t, a.Scale(2).Add(b.Scale(2)), a.Add(b).Scale(2))
	assert.Equal(t, a.Scale(6), a.Scale(2).Scale(3))
}

func TestVec2Products(t *testing.T) {
	a := Vec2[float64]{1, 2}
	b := Vec2[float64]{3, -4}

	assert.Equal(t, -5.0, a.Dot(b))
	assert.Equal(t, a.Dot(b), b.Dot(a))
	assert.Equal(t, -10.0, a.Cross(b))
	assert.Equal(t, 10.0, b.Cross(a))
	assert.Equal(t, 0.0, a.Cross(a))
}

func TestVec2Norm(t *testing.T) {
	v := Vec2[float64]{3, 4}
	assert.Equal(t, 25.0, v.Norm2())
	assert.Equal(t, 5.0, v.Norm())

	u, err := v.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1, u.Norm(), 1e-12)
	assert.InDelta(t, 0.6, u.X, 1e-12)
	assert.InDelta(t, 0.8, u.Y, 1e-12)

	_, err = Vec2[float64]{}.Normalize()
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3[float32]{1, 2, 3}
	b := Vec3[float32]{-1, 5, 0}

	assert.Equal(t, Vec3[float32]{0, 7, 3}, a.Add(b))
	assert.Equal(t, Vec3[float32]{2, -3, 3}, a.Sub(b))
	assert.Equal(t, a, a.Add(a.Neg()).Add(a))
	assert.Equal(t, Vec3[float32]{2, 4, 6}, a.Scale(2))
}

func TestVec3Cross(t *testing.T) {
	x := Vec3[float64]{1, 0, 0}
	y := Vec3[float64]{0, 1, 0}
	z := Vec3[float64]{0, 0, 1}

	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, z.Neg(), y.Cross(x))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, Vec3[float64]{}, x.Cross(x))
	// the cross product is orthogonal to both operands
	a := Vec3[float64]{1, 2, 3}
	b := Vec3[float64]{-4, 0.5, 2}
	c := a.Cross(b)
	assert.InDelta(t, 0, c.Dot(a), 1e-12)
	assert.InDelta(t, 0, c.Dot(b), 1e-12)
}

func TestVec3Norm(t *testing.T) {
	v := Vec3[float64]{2, 3, 6}
	assert.Equal(t, 49.0, v.Norm2())
	assert.Equal(t, 7.0, v.Norm())

	u, err := v.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1, u.Norm(), 1e-12)

	_, err = Vec3[float64]{}.Normalize()
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestHomogeneousRoundTrip(t *testing.T) {
	p := Vec2[float64]{4, -7}
	h := p.Vec3()
	assert.Equal(t, Vec3[float64]{4, -7, 1}, h)
	assert.Equal(t, p, h.Vec2())
}
