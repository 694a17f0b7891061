package geom

import (
	. "math"

	"github.com/spinlab/clinostat/mat"
)

// RotationXT creates the transpose of the right-handed rotation matrix
// about the x axis by the angle theta. Applying it to a lab-frame vector
// re-expresses that vector in a frame rotated by theta about x.
func RotationXT(theta float64) *mat.Matrix {
	m := mat.NewZeroMatrix(3, 3)
	RotationXTAt(theta, m)
	return m
}

// RotationXTAt fills m with the transposed x-axis rotation by theta. m must
// be 3x3.
func RotationXTAt(theta float64, m *mat.Matrix) {
	if m.Width != 3 || m.Height != 3 { panic("m is not 3x3.") }

	sin, cos := Sin(theta), Cos(theta)
	v := m.Vals
	v[0], v[1], v[2] = 1, 0, 0
	v[3], v[4], v[5] = 0, cos, sin
	v[6], v[7], v[8] = 0, -sin, cos
}

// RotationYT creates the transpose of the right-handed rotation matrix
// about the y axis by the angle theta.
func RotationYT(theta float64) *mat.Matrix {
	m := mat.NewZeroMatrix(3, 3)
	RotationYTAt(theta, m)
	return m
}

// RotationYTAt fills m with the transposed y-axis rotation by theta. m must
// be 3x3.
func RotationYTAt(theta float64, m *mat.Matrix) {
	if m.Width != 3 || m.Height != 3 { panic("m is not 3x3.") }

	sin, cos := Sin(theta), Cos(theta)
	v := m.Vals
	v[0], v[1], v[2] = cos, 0, -sin
	v[3], v[4], v[5] = 0, 1, 0
	v[6], v[7], v[8] = sin, 0, cos
}

// Rotate rotates a vector in place by the given rotation matrix.
func (v *Vec) Rotate(m *mat.Matrix) {
	v0 := m.Vals[0]*v[0] + m.Vals[1]*v[1] + m.Vals[2]*v[2]
	v1 := m.Vals[3]*v[0] + m.Vals[4]*v[1] + m.Vals[5]*v[2]
	v2 := m.Vals[6]*v[0] + m.Vals[7]*v[1] + m.Vals[8]*v[2]
	v[0], v[1], v[2] = v0, v1, v2
}
