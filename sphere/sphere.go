/*package sphere contains a deterministic quasi-uniform sampling of the unit
sphere and a coverage scorer for 3D paths measured against that sampling.
*/
package sphere

import (
	"math"

	"github.com/spinlab/clinostat/geom"
)

// DefaultPoints is the standard lattice size used by the coverage scorer.
const DefaultPoints = 1000

// Octant identifies one of the 8 regions of space given by the signs of a
// vector's components. Bit 2 is set when x > 0, bit 1 when y > 0, and bit 0
// when z > 0. A component equal to zero classifies as non-positive. That
// policy is deliberate and matches the scorer's cell definitions; changing
// it would change coverage scores.
type Octant uint8

// NOctants is the number of distinct Octant values.
const NOctants = 8

// OctantOf returns the Octant containing v.
func OctantOf(v *geom.Vec) Octant {
	oct := Octant(0)
	if v[0] > 0 { oct |= 4 }
	if v[1] > 0 { oct |= 2 }
	if v[2] > 0 { oct |= 1 }
	return oct
}

var octantNames = [NOctants]string{
	4 | 2 | 1: "posI",
	2 | 1:     "posII",
	1:         "posIII",
	4 | 1:     "posIV",
	4 | 2:     "negI",
	2:         "negII",
	0:         "negIII",
	4:         "negIV",
}

// String returns the quadrant-style octant label: posI..posIV above the
// z = 0 plane and negI..negIV on or below it.
func (oct Octant) String() string { return octantNames[oct] }

// Lattice is a fixed quasi-uniform point set on the unit sphere, generated
// by the golden-angle spiral and partitioned by octant. A Lattice is
// immutable after creation: the same n always produces the same points in
// the same enumeration order.
type Lattice struct {
	Points []geom.Vec
	buckets [NOctants][]int
}

// NewLattice generates the n-point golden-angle lattice.
func NewLattice(n int) *Lattice {
	if n < 2 { panic("lattice size must be at least 2.") }

	goldenRatio := (math.Sqrt(5) + 1) / 2
	goldenAngle := (2 - goldenRatio) * (2 * math.Pi)

	lat := &Lattice{Points: make([]geom.Vec, n)}
	for i := 0; i < n; i++ {
		y := 1 - float64(2*i)/float64(n-1)
		radius := math.Sqrt(1 - y*y)
		theta := goldenAngle * float64(i)

		lat.Points[i] = geom.Vec{
			math.Cos(theta) * radius, y, math.Sin(theta) * radius,
		}
	}

	for i := range lat.Points {
		oct := OctantOf(&lat.Points[i])
		lat.buckets[oct] = append(lat.buckets[oct], i)
	}

	return lat
}

// Bucket returns the generation indices of the lattice points inside oct, in
// ascending generation order. The returned slice is shared and must not be
// modified.
func (lat *Lattice) Bucket(oct Octant) []int { return lat.buckets[oct] }

// Len returns the number of points in the lattice.
func (lat *Lattice) Len() int { return len(lat.Points) }
