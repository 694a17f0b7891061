/*package analyze contains reporting reductions over acceleration series:
running means, magnitudes, and analysis-window selection.
*/
package analyze

import (
	"fmt"
	"math"

	"github.com/spinlab/clinostat/geom"
	"github.com/spinlab/clinostat/kinematics"
)

// RunningMean returns the series whose value at index i is the per-component
// arithmetic mean of s.Vecs[0..i]. The result shares s's time grid. An empty
// series gives an empty result.
func RunningMean(s kinematics.Series) kinematics.Series {
	out := kinematics.Series{
		Times: s.Times, Vecs: make([]geom.Vec, len(s.Vecs)),
	}

	var sum geom.Vec
	for i := range s.Vecs {
		sum.AddSelf(&s.Vecs[i])
		sum.ScaleAt(1/float64(i+1), &out.Vecs[i])
	}
	return out
}

// Magnitudes returns the Euclidean norm of every vector in vecs.
func Magnitudes(vecs []geom.Vec) []float64 {
	out := make([]float64, len(vecs))
	for i := range vecs { out[i] = vecs[i].Norm() }
	return out
}

// Mean returns the arithmetic mean of xs, or NaN for empty input.
func Mean(xs []float64) float64 {
	if len(xs) == 0 { return math.NaN() }

	sum := 0.0
	for _, x := range xs { sum += x }
	return sum / float64(len(xs))
}

// Window returns the half-open index range [lo, hi) of the samples inside
// the analysis window [startHours, endHours]. Each bound maps to the first
// sample whose time is at or past it. times are in seconds, ascending.
func Window(times []float64, startHours, endHours float64) (lo, hi int, err error) {
	if endHours <= startHours {
		return 0, 0, fmt.Errorf(
			"The lower analysis bound %g h must be below the upper bound %g h.",
			startHours, endHours,
		)
	}

	lo = firstAtOrPast(times, startHours * 3600)
	hi = firstAtOrPast(times, endHours * 3600)
	if lo == -1 || hi == -1 {
		return 0, 0, fmt.Errorf(
			"The analysis window [%g h, %g h] extends past the end of the "+
				"series.", startHours, endHours,
		)
	}
	return lo, hi, nil
}

// firstAtOrPast returns the first index of times with a value >= t, or -1.
func firstAtOrPast(times []float64, t float64) int {
	for i := range times {
		if times[i] >= t { return i }
	}
	return -1
}
