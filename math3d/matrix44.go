package math3d

import (
	"fmt"
	"math"
)

// Matrix44 is a 4x4 transformation matrix. Vectors are treated as rows and
// multiplied on the left, so the translation lives in the fourth row and
// transforms compose left to right.
type Matrix44 struct {
	m11 float64 // 0
	m12 float64 // 1
	m13 float64 // 2
	m14 float64 // 3
	m21 float64 // 4
	m22 float64 // 5
	m23 float64 // 6
	m24 float64 // 7
	m31 float64 // 8
	m32 float64 // 9
	m33 float64 // 10
	m34 float64 // 11
	m41 float64 // 12
	m42 float64 // 13
	m43 float64 // 14
	m44 float64 // 15
}

var (
	IdentityMatrix44 = Matrix44{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
)

// MakeMatrix44 returns a matrix which rotates a vector by the given
// orientation, then translates it by v.
func MakeMatrix44(v Vector3, ea EulerAngles) Matrix44 {
	m := Matrix44{}
	m.SetRotation(ea)
	m.SetTranslation(v)
	return m
}

func (m Matrix44) String() string {
	return fmt.Sprintf(
		"&M44{%+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f}",
		m.m11, m.m12, m.m13, m.m14,
		m.m21, m.m22, m.m23, m.m24,
		m.m31, m.m32, m.m33, m.m34,
		m.m41, m.m42, m.m43, m.m44)
}

// Inverse returns the inverse of a rigid (rotate, then translate) matrix: the
// rotation is transposed, and the translation is rotated back and negated.
// Matrices with any scale or shear aren't supported.
func (m Matrix44) Inverse() Matrix44 {
	return Matrix44{
		m.m11, m.m21, m.m31, 0,
		m.m12, m.m22, m.m32, 0,
		m.m13, m.m23, m.m33, 0,
		-((m.m41 * m.m11) + (m.m42 * m.m12) + (m.m43 * m.m13)),
		-((m.m41 * m.m21) + (m.m42 * m.m22) + (m.m43 * m.m23)),
		-((m.m41 * m.m31) + (m.m42 * m.m32) + (m.m43 * m.m33)),
		1,
	}
}

// MultiplyMatrices multiplies two 4x4 matrices together. Applying the result
// to a vector is the same as applying a, then b.
func MultiplyMatrices(a Matrix44, b Matrix44) Matrix44 {
	return Matrix44{
		(a.m11 * b.m11) + (a.m12 * b.m21) + (a.m13 * b.m31) + (a.m14 * b.m41),
		(a.m11 * b.m12) + (a.m12 * b.m22) + (a.m13 * b.m32) + (a.m14 * b.m42),
		(a.m11 * b.m13) + (a.m12 * b.m23) + (a.m13 * b.m33) + (a.m14 * b.m43),
		(a.m11 * b.m14) + (a.m12 * b.m24) + (a.m13 * b.m34) + (a.m14 * b.m44),
		(a.m21 * b.m11) + (a.m22 * b.m21) + (a.m23 * b.m31) + (a.m24 * b.m41),
		(a.m21 * b.m12) + (a.m22 * b.m22) + (a.m23 * b.m32) + (a.m24 * b.m42),
		(a.m21 * b.m13) + (a.m22 * b.m23) + (a.m23 * b.m33) + (a.m24 * b.m43),
		(a.m21 * b.m14) + (a.m22 * b.m24) + (a.m23 * b.m34) + (a.m24 * b.m44),
		(a.m31 * b.m11) + (a.m32 * b.m21) + (a.m33 * b.m31) + (a.m34 * b.m41),
		(a.m31 * b.m12) + (a.m32 * b.m22) + (a.m33 * b.m32) + (a.m34 * b.m42),
		(a.m31 * b.m13) + (a.m32 * b.m23) + (a.m33 * b.m33) + (a.m34 * b.m43),
		(a.m31 * b.m14) + (a.m32 * b.m24) + (a.m33 * b.m34) + (a.m34 * b.m44),
		(a.m41 * b.m11) + (a.m42 * b.m21) + (a.m43 * b.m31) + (a.m44 * b.m41),
		(a.m41 * b.m12) + (a.m42 * b.m22) + (a.m43 * b.m32) + (a.m44 * b.m42),
		(a.m41 * b.m13) + (a.m42 * b.m23) + (a.m43 * b.m33) + (a.m44 * b.m43),
		(a.m41 * b.m14) + (a.m42 * b.m24) + (a.m43 * b.m34) + (a.m44 * b.m44),
	}
}

// RotationZ returns a matrix which rotates counter-clockwise about the Z axis
// by the given angle, in radians.
func RotationZ(a float64) Matrix44 {
	c, s := math.Cos(a), math.Sin(a)
	m := IdentityMatrix44
	m.m11, m.m12 = c, s
	m.m21, m.m22 = -s, c
	return m
}

// RotationY returns a matrix which rotates about the Y axis by the given
// angle, in radians.
func RotationY(a float64) Matrix44 {
	c, s := math.Cos(a), math.Sin(a)
	m := IdentityMatrix44
	m.m11, m.m13 = c, -s
	m.m31, m.m33 = s, c
	return m
}

// RotationX returns a matrix which rotates about the X axis by the given
// angle, in radians.
func RotationX(a float64) Matrix44 {
	c, s := math.Cos(a), math.Sin(a)
	m := IdentityMatrix44
	m.m22, m.m23 = c, s
	m.m32, m.m33 = -s, c
	return m
}

// SetRotation overwrites the matrix with the rotation of the given Euler
// angles: yaw first, then pitch, then roll. Any translation is discarded.
func (m *Matrix44) SetRotation(ea EulerAngles) {
	*m = MultiplyMatrices(MultiplyMatrices(RotationZ(ea.Yaw), RotationY(ea.Pitch)), RotationX(ea.Roll))
}

// SetTranslation sets the translation of a matrix by overwriting the fourth
// row. Other cells are left alone.
func (m *Matrix44) SetTranslation(v Vector3) {
	m.m41 = v.X
	m.m42 = v.Y
	m.m43 = v.Z
}
