/*package geom contains routines for computing geometric quantities.*/
package geom

import (
	"math"
)

// Vec is a three dimensional vector.
type Vec [3]float64

// AddAt stores v1 + v2 in out. out may alias either input.
func (v1 *Vec) AddAt(v2, out *Vec) {
	for i := 0; i < 3; i++ { out[i] = v1[i] + v2[i] }
}

// AddSelf adds v2 to v1 in place.
func (v1 *Vec) AddSelf(v2 *Vec) { v1.AddAt(v2, v1) }

// SubAt stores v1 - v2 in out. out may alias either input.
func (v1 *Vec) SubAt(v2, out *Vec) {
	for i := 0; i < 3; i++ { out[i] = v1[i] - v2[i] }
}

// SubSelf subtracts v2 from v1 in place.
func (v1 *Vec) SubSelf(v2 *Vec) { v1.SubAt(v2, v1) }

// ScaleAt stores v * s in out. out may alias v.
func (v *Vec) ScaleAt(s float64, out *Vec) {
	for i := 0; i < 3; i++ { out[i] = v[i] * s }
}

// ScaleSelf multiplies v by s in place.
func (v *Vec) ScaleSelf(s float64) { v.ScaleAt(s, v) }

// Dot returns the inner product of v1 and v2.
func (v1 *Vec) Dot(v2 *Vec) float64 {
	return v1[0]*v2[0] + v1[1]*v2[1] + v1[2]*v2[2]
}

// CrossAt stores v1 x v2 in out. out may not alias either input.
func (v1 *Vec) CrossAt(v2, out *Vec) {
	out[0] = v1[1]*v2[2] - v1[2]*v2[1]
	out[1] = v1[2]*v2[0] - v1[0]*v2[2]
	out[2] = v1[0]*v2[1] - v1[1]*v2[0]
}

// Norm returns the Euclidean length of v.
func (v *Vec) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// DistSqr returns the squared Euclidean distance between v1 and v2.
func (v1 *Vec) DistSqr(v2 *Vec) float64 {
	dx := v1[0] - v2[0]
	dy := v1[1] - v2[1]
	dz := v1[2] - v2[2]
	return dx*dx + dy*dy + dz*dz
}
