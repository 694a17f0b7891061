package geom

import (
	"math"
	"math/rand"
	"testing"
)

const testEps = 1e-9

func (v *Vec) random(gen *rand.Rand, width float64) {
	v[0] = gen.Float64() * width
	v[1] = gen.Float64() * width
	v[2] = gen.Float64() * width
}

func almostEq(x, y float64) bool { return math.Abs(x - y) < testEps }

func TestCrossOrthogonal(t *testing.T) {
	gen := rand.New(rand.NewSource(0))
	v1, v2, out := &Vec{}, &Vec{}, &Vec{}

	for i := 0; i < 100; i++ {
		v1.random(gen, 2.0)
		v2.random(gen, 2.0)
		v1.CrossAt(v2, out)

		if !almostEq(out.Dot(v1), 0) || !almostEq(out.Dot(v2), 0) {
			t.Errorf("%d) %v x %v = %v is not orthogonal to its inputs.",
				i, v1, v2, out)
		}
	}
}

func TestCrossHandedness(t *testing.T) {
	x, y, out := &Vec{1, 0, 0}, &Vec{0, 1, 0}, &Vec{}
	x.CrossAt(y, out)
	if *out != (Vec{0, 0, 1}) {
		t.Errorf("x cross y = %v, not z.", out)
	}
}

func TestRotationPreservesNorm(t *testing.T) {
	gen := rand.New(rand.NewSource(1))
	v := &Vec{}

	for i := 0; i < 100; i++ {
		v.random(gen, 2.0)
		norm := v.Norm()

		theta1 := gen.Float64() * 2 * math.Pi
		theta2 := gen.Float64() * 2 * math.Pi
		v.Rotate(RotationXT(theta1))
		v.Rotate(RotationYT(theta2))

		if !almostEq(v.Norm(), norm) {
			t.Errorf("%d) rotation changed norm from %g to %g.",
				i, norm, v.Norm())
		}
	}
}

func TestRotationXT(t *testing.T) {
	// A quarter turn of the frame about x carries the lab z axis onto the
	// body y axis.
	v := &Vec{0, 0, 1}
	v.Rotate(RotationXT(math.Pi / 2))

	if !almostEq(v[0], 0) || !almostEq(v[1], 1) || !almostEq(v[2], 0) {
		t.Errorf("R_x^T(pi/2) z = %v, not y.", v)
	}
}

func TestRotationYT(t *testing.T) {
	v := &Vec{0, 0, 1}
	v.Rotate(RotationYT(math.Pi / 2))

	if !almostEq(v[0], -1) || !almostEq(v[1], 0) || !almostEq(v[2], 0) {
		t.Errorf("R_y^T(pi/2) z = %v, not -x.", v)
	}
}

func TestRotationInverse(t *testing.T) {
	gen := rand.New(rand.NewSource(2))
	v, orig := &Vec{}, &Vec{}

	for i := 0; i < 100; i++ {
		v.random(gen, 2.0)
		*orig = *v
		theta := gen.Float64() * 2 * math.Pi

		v.Rotate(RotationXT(theta))
		v.Rotate(RotationXT(-theta))

		for dim := 0; dim < 3; dim++ {
			if !almostEq(v[dim], orig[dim]) {
				t.Errorf("%d) inverse rotation gave %v, not %v.", i, v, orig)
			}
		}
	}
}

func BenchmarkRotate(b *testing.B) {
	gen := rand.New(rand.NewSource(3))
	vs := make([]Vec, 1<<10)
	for i := range vs { vs[i].random(gen, 1.0) }
	m := RotationXT(0.7)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vs[i % len(vs)].Rotate(m)
	}
}

func BenchmarkRotationXTAt(b *testing.B) {
	m := RotationXT(0)
	for i := 0; i < b.N; i++ {
		RotationXTAt(float64(i) * 1e-3, m)
	}
}
