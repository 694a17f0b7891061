/*package kinematics models the specific acceleration experienced by a sample
point mounted inside a two-axis rotating fixture.

The fixture has an outer frame spinning about the lab x axis and an inner
frame spinning about the (rotated) y axis. The sample point is rigidly
attached to the inner frame at a fixed offset from the rotation centers, so
its inertial acceleration is the Euler term plus the centripetal term with
no Coriolis contribution. All outputs are expressed in the instantaneous
body frame in units of standard gravity.
*/
package kinematics

import (
	"fmt"
	"math"
	"runtime"

	"github.com/spinlab/clinostat/geom"
	"github.com/spinlab/clinostat/mat"
)

const (
	// G0 is standard gravity in m/s^2.
	G0 = 9.80665

	rpmToRadSec = math.Pi / 30
	degToRad = math.Pi / 180
)

// Config describes a single simulation run. It is immutable after Check.
type Config struct {
	// Rotation rates of the two frames in revolutions per minute.
	InnerRPM, OuterRPM float64
	// Initial phase angles of the two frames in degrees.
	InnerPhaseDeg, OuterPhaseDeg float64
	// Offset of the sample point from the rotation centers in meters. A
	// zero offset is legal and gives a zero inertial term.
	Offset geom.Vec
	// Length of the simulated run in hours and the sample spacing in
	// seconds.
	DurationHours float64
	TimeStepSec float64
}

// Check returns a descriptive error if cfg cannot be simulated. All
// validation happens here; the model itself never fails on a checked
// config.
func (cfg *Config) Check() error {
	if cfg.DurationHours <= 0 {
		return fmt.Errorf(
			"DurationHours must be positive, but is %g.", cfg.DurationHours,
		)
	} else if cfg.TimeStepSec <= 0 {
		return fmt.Errorf(
			"TimeStepSec must be positive, but is %g.", cfg.TimeStepSec,
		)
	}
	return nil
}

// SampleCount returns the number of samples on cfg's time grid, including
// both endpoints.
func (cfg *Config) SampleCount() int {
	return int(math.Floor(cfg.DurationHours * 3600 / cfg.TimeStepSec)) + 1
}

// Series is a chronologically ordered vector time series. Times are in
// seconds. A Series is never mutated after creation; derived series are new
// values.
type Series struct {
	Times []float64
	Vecs []geom.Vec
}

// Len returns the number of samples in the series.
func (s Series) Len() int { return len(s.Vecs) }

// Model computes acceleration series from Configs. A Model may be reused
// across runs; it carries no per-run state.
type Model struct {
	workers int
}

// NewModel creates a Model which uses one worker per logical core.
func NewModel() *Model {
	return &Model{workers: runtime.NumCPU()}
}

// Workers sets the number of concurrent workers used by Accelerations.
func (mod *Model) Workers(n int) {
	if n < 1 { panic("worker count must be positive.") }
	mod.workers = n
}

// Accelerations computes the gravitational, inertial, and total specific
// acceleration of the configured sample point at every sample on cfg's time
// grid. All three series share one time grid spanning [0, duration] at
// TimeStepSec spacing, and all vectors are in the body frame in units of
// standard gravity.
func (mod *Model) Accelerations(
	cfg *Config,
) (grav, inert, total Series, err error) {
	if err = cfg.Check(); err != nil { return Series{}, Series{}, Series{}, err }

	n := cfg.SampleCount()
	times := make([]float64, n)
	for i := range times { times[i] = float64(i) * cfg.TimeStepSec }

	gVecs := make([]geom.Vec, n)
	aVecs := make([]geom.Vec, n)
	totVecs := make([]geom.Vec, n)

	workers := mod.workers
	if workers > n { workers = n }

	out := make(chan int, workers)
	for id := 0; id < workers - 1; id++ {
		go mod.chanAccelerate(id, workers, cfg, times, gVecs, aVecs, totVecs, out)
	}
	mod.chanAccelerate(workers - 1, workers, cfg, times, gVecs, aVecs, totVecs, out)
	for i := 0; i < workers; i++ { <-out }

	grav = Series{times, gVecs}
	inert = Series{times, aVecs}
	total = Series{times, totVecs}
	return grav, inert, total, nil
}

// chanAccelerate fills every workers'th sample starting at id. Workers touch
// disjoint indices, so no locking is needed.
func (mod *Model) chanAccelerate(
	id, workers int, cfg *Config, times []float64,
	gVecs, aVecs, totVecs []geom.Vec, out chan<- int,
) {
	innerRate := cfg.InnerRPM * rpmToRadSec
	outerRate := cfg.OuterRPM * rpmToRadSec
	innerPhase := cfg.InnerPhaseDeg * degToRad
	outerPhase := cfg.OuterPhaseDeg * degToRad

	rxt := mat.NewZeroMatrix(3, 3)
	ryt := mat.NewZeroMatrix(3, 3)

	var w, wDot, r, tmp1, tmp2, a geom.Vec

	for i := id; i < len(times); i += workers {
		t := times[i]
		// theta1 is the outer frame's phase about the lab x axis, theta2
		// the inner frame's phase about the rotated y axis.
		theta1 := outerRate*t + outerPhase
		theta2 := innerRate*t + innerPhase
		sin1, cos1 := math.Sin(theta1), math.Cos(theta1)
		sin2, cos2 := math.Sin(theta2), math.Cos(theta2)

		// Total angular velocity and its time derivative. The inner axis
		// itself rotates about the outer axis, which modulates the inner
		// contribution by the outer phase.
		w = geom.Vec{outerRate, innerRate * cos1, innerRate * sin1}
		wDot = geom.Vec{0, -outerRate * innerRate * sin1,
			outerRate * innerRate * cos1}

		// Position of the sample point relative to the rotation centers,
		// expressed in the frame shared with w.
		dx, dy, dz := cfg.Offset[0], cfg.Offset[1], cfg.Offset[2]
		r = geom.Vec{
			dx*cos2 + dz*sin2,
			dy*cos1 + dx*sin1*sin2 - dz*sin1*cos2,
			dy*sin1 - dx*cos1*sin2 + dz*cos1*cos2,
		}

		// a = -(wDot x r + w x (w x r)): Euler plus centripetal. The point
		// is rigidly attached, so there is no Coriolis term.
		w.CrossAt(&r, &tmp1)
		w.CrossAt(&tmp1, &tmp2)
		wDot.CrossAt(&r, &tmp1)
		tmp1.AddAt(&tmp2, &a)
		a.ScaleSelf(-1)

		geom.RotationXTAt(theta1, rxt)
		geom.RotationYTAt(theta2, ryt)

		a.Rotate(rxt)
		a.Rotate(ryt)
		a.ScaleSelf(1 / G0)

		g := geom.Vec{0, 0, -G0}
		g.Rotate(rxt)
		g.Rotate(ryt)
		g.ScaleSelf(1 / G0)

		gVecs[i] = g
		aVecs[i] = a
		g.AddAt(&a, &totVecs[i])
	}

	out <- id
}
