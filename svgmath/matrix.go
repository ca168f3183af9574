package svgmath

import "math"

// Mat3 is a 3x3 matrix, indexed [row][column]. Affine 2D transforms
// store their translation in the third row, matching the row-vector
// convention p' = p * M.
type Mat3[T Float] [3][3]T

// Identity returns the 3x3 identity matrix.
func Identity[T Float]() Mat3[T] {
	return Mat3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Translate returns the affine translation by (tx, ty).
func Translate[T Float](tx, ty T) Mat3[T] {
	return Mat3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{tx, ty, 1},
	}
}

// Scale returns the affine scaling by (sx, sy).
func Scale[T Float](sx, sy T) Mat3[T] {
	return Mat3[T]{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}
}

// Rotate returns the rotation by angle radians about the origin,
// mapping (1, 0) to (cos angle, sin angle).
func Rotate[T Float](angle T) Mat3[T] {
	sin, cos := math.Sincos(float64(angle))
	s, c := T(sin), T(cos)
	return Mat3[T]{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

// RotateAround returns the rotation by angle radians about the pivot
// (cx, cy). It is the collapsed product of translating the pivot to
// the origin, rotating, and translating back.
func RotateAround[T Float](angle, cx, cy T) Mat3[T] {
	sin, cos := math.Sincos(float64(angle))
	s, c := T(sin), T(cos)
	return Mat3[T]{
		{c, s, 0},
		{-s, c, 0},
		{-cx*c + cy*s + cx, -cx*s - cy*c + cy, 1},
	}
}

// SkewX returns the shear moving X by Y*tan(angle).
func SkewX[T Float](angle T) Mat3[T] {
	t := T(math.Tan(float64(angle)))
	return Mat3[T]{
		{1, 0, 0},
		{t, 1, 0},
		{0, 0, 1},
	}
}

// SkewY returns the shear moving Y by X*tan(angle).
func SkewY[T Float](angle T) Mat3[T] {
	t := T(math.Tan(float64(angle)))
	return Mat3[T]{
		{1, t, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Affine builds a matrix from the six coefficients (a, b, c, d, e, f)
// of the usual SVG column notation, converted to row form.
func Affine[T Float](a, b, c, d, e, f T) Mat3[T] {
	return Mat3[T]{
		{a, b, 0},
		{c, d, 0},
		{e, f, 1},
	}
}

// Mul returns the matrix product m * n.
func (m Mat3[T]) Mul(n Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return out
}

// Add returns the element-wise sum of m and n.
func (m Mat3[T]) Add(n Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][j] + n[i][j]
		}
	}
	return out
}

// Transpose returns the transpose of m.
func (m Mat3[T]) Transpose() Mat3[T] {
	var out Mat3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// TransposeInPlace transposes m by swapping the entries above the
// diagonal with the entries below it, without allocating a copy.
func (m *Mat3[T]) TransposeInPlace() {
	m[0][1], m[1][0] = m[1][0], m[0][1]
	m[0][2], m[2][0] = m[2][0], m[0][2]
	m[1][2], m[2][1] = m[2][1], m[1][2]
}

// Row returns row i of m.
func (m Mat3[T]) Row(i int) Vec3[T] { return Vec3[T]{m[i][0], m[i][1], m[i][2]} }

// Col returns column j of m.
func (m Mat3[T]) Col(j int) Vec3[T] { return Vec3[T]{m[0][j], m[1][j], m[2][j]} }

// MulMat returns the row vector v * m.
func (v Vec3[T]) MulMat(m Mat3[T]) Vec3[T] {
	return Vec3[T]{
		v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}

// Apply transforms the point p by m, treating p as the homogeneous row
// vector (x, y, 1).
func (m Mat3[T]) Apply(p Vec2[T]) Vec2[T] {
	return Vec2[T]{
		p.X*m[0][0] + p.Y*m[1][0] + m[2][0],
		p.X*m[0][1] + p.Y*m[1][1] + m[2][1],
	}
}

// Cast converts a matrix between scalar types.
func Cast[U, T Float](m Mat3[T]) Mat3[U] {
	var out Mat3[U]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = U(m[i][j])
		}
	}
	return out
}
