package linalg

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a 4x4 affine transform backed by an mgl64 column-major matrix.
type Matrix struct {
	m mgl64.Mat4
}

// NewMatrix creates a matrix from row-major values
func NewMatrix(rows [4][4]float64) Matrix {
	var m mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[c*4+r] = rows[r][c]
		}
	}
	return Matrix{m: m}
}

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{m: mgl64.Ident4()}
}

// Translation returns a translation matrix
func Translation(x, y, z float64) Matrix {
	return Matrix{m: mgl64.Translate3D(x, y, z)}
}

// Scaling returns a scaling matrix
func Scaling(x, y, z float64) Matrix {
	return Matrix{m: mgl64.Scale3D(x, y, z)}
}

// RotationX returns a rotation about the x axis by r radians
func RotationX(r float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DX(r)}
}

// RotationY returns a rotation about the y axis by r radians
func RotationY(r float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DY(r)}
}

// RotationZ returns a rotation about the z axis by r radians
func RotationZ(r float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DZ(r)}
}

// Shearing returns a shear matrix where each parameter moves one
// coordinate in proportion to another (xy = x in proportion to y, etc.)
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix([4][4]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// Mul returns the matrix product m * other
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{m: m.m.Mul4(other.m)}
}

// MulTuple applies the transform to a tuple
func (m Matrix) MulTuple(t Tuple) Tuple {
	v := m.m.Mul4x1(mgl64.Vec4{t.X, t.Y, t.Z, t.W})
	return Tuple{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// Transpose returns the transposed matrix
func (m Matrix) Transpose() Matrix {
	return Matrix{m: m.m.Transpose()}
}

// Det returns the determinant
func (m Matrix) Det() float64 {
	return m.m.Det()
}

// Inverse returns the inverse matrix. It panics when the matrix is
// singular, since placement transforms must always be invertible.
func (m Matrix) Inverse() Matrix {
	if math.Abs(m.m.Det()) < 1e-12 {
		panic("linalg: cannot invert singular matrix")
	}
	return Matrix{m: m.m.Inv()}
}

// At returns the element at row r, column c
func (m Matrix) At(r, c int) float64 {
	return m.m[c*4+r]
}

// ApproxEqual reports whether two matrices are equal within Epsilon
func (m Matrix) ApproxEqual(other Matrix) bool {
	for i := range m.m {
		if math.Abs(m.m[i]-other.m[i]) >= Epsilon {
			return false
		}
	}
	return true
}

// ViewTransform builds the world-to-camera orientation matrix for a camera
// at from, looking at to, with the given approximate up direction.
func ViewTransform(from, to, up Tuple) Matrix {
	eye := mgl64.Vec3{from.X, from.Y, from.Z}
	center := mgl64.Vec3{to.X, to.Y, to.Z}
	upv := mgl64.Vec3{up.X, up.Y, up.Z}
	return Matrix{m: mgl64.LookAtV(eye, center, upv)}
}
