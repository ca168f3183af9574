// Package svgmath provides the small fixed-size linear algebra used by
// the rest of the module: 2D and 3D vectors and 3x3 affine matrices,
// generic over the scalar type.
//
// Matrices follow the row-vector convention: a point transforms as
// p' = p * M, so translation components live in the third row and a
// chain of transforms applies left to right.
package svgmath

import (
	"errors"
	"math"
)

// Float is the scalar constraint shared by Vec2, Vec3 and Mat3.
type Float interface {
	~float32 | ~float64
}

// ErrZeroVector is returned by Normalize when the receiver has no
// direction to preserve.
var ErrZeroVector = errors.New("svgmath: cannot normalize a zero-length vector")

func sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// Vec2 is a 2D vector (or point).
type Vec2[T Float] struct {
	X, Y T
}

func (v Vec2[T]) Add(u Vec2[T]) Vec2[T] { return Vec2[T]{v.X + u.X, v.Y + u.Y} }

func (v Vec2[T]) Sub(u Vec2[T]) Vec2[T] { return Vec2[T]{v.X - u.X, v.Y - u.Y} }

func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }

func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v.X, -v.Y} }

// Dot returns the scalar product of v and u.
func (v Vec2[T]) Dot(u Vec2[T]) T { return v.X*u.X + v.Y*u.Y }

// Cross returns the Z component of the cross product of v and u lifted
// to 3D. Its sign gives the orientation of the turn from v to u.
func (v Vec2[T]) Cross(u Vec2[T]) T { return v.X*u.Y - v.Y*u.X }

// Norm2 returns the squared euclidean length of v.
func (v Vec2[T]) Norm2() T { return v.Dot(v) }

// Norm returns the euclidean length of v.
func (v Vec2[T]) Norm() T { return sqrt(v.Norm2()) }

// Normalize returns v scaled to unit length. It fails on the zero
// vector rather than returning NaNs.
func (v Vec2[T]) Normalize() (Vec2[T], error) {
	n := v.Norm()
	if n == 0 {
		return Vec2[T]{}, ErrZeroVector
	}
	return v.Scale(1 / n), nil
}

// Vec3 returns v in homogeneous coordinates, with Z set to 1.
func (v Vec2[T]) Vec3() Vec3[T] { return Vec3[T]{v.X, v.Y, 1} }

// Vec3 is a 3D vector, also used as a homogeneous 2D point.
type Vec3[T Float] struct {
	X, Y, Z T
}

func (v Vec3[T]) Add(u Vec3[T]) Vec3[T] { return Vec3[T]{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }

func (v Vec3[T]) Sub(u Vec3[T]) Vec3[T] { return Vec3[T]{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }

func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }

// Dot returns the scalar product of v and u.
func (v Vec3[T]) Dot(u Vec3[T]) T { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

// Cross returns the cross product of v and u.
func (v Vec3[T]) Cross(u Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// Norm2 returns the squared euclidean length of v.
func (v Vec3[T]) Norm2() T { return v.Dot(v) }

// Norm returns the euclidean length of v.
func (v Vec3[T]) Norm() T { return sqrt(v.Norm2()) }

// Normalize returns v scaled to unit length. It fails on the zero
// vector rather than returning NaNs.
func (v Vec3[T]) Normalize() (Vec3[T], error) {
	n := v.Norm()
	if n == 0 {
		return Vec3[T]{}, ErrZeroVector
	}
	return v.Scale(1 / n), nil
}

// Vec2 drops the homogeneous component.
func (v Vec3[T]) Vec2() Vec2[T] { return Vec2[T]{v.X, v.Y} }
