package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spinlab/clinostat/geom"
)

const testEps = 1e-9

func testConfig() *Config {
	return &Config{
		InnerRPM: 2, OuterRPM: 3,
		Offset: geom.Vec{0.05, 0.05, 0.05},
		DurationHours: 0.01, TimeStepSec: 0.1,
	}
}

func TestCheck(t *testing.T) {
	cfg := testConfig()
	assert.NoError(t, cfg.Check())

	bad := *cfg
	bad.DurationHours = 0
	assert.Error(t, bad.Check(), "zero duration")
	bad = *cfg
	bad.DurationHours = -1
	assert.Error(t, bad.Check(), "negative duration")
	bad = *cfg
	bad.TimeStepSec = 0
	assert.Error(t, bad.Check(), "zero step")
}

func TestTimeGrid(t *testing.T) {
	cfg := &Config{DurationHours: 1, TimeStepSec: 1}
	grav, inert, total, err := NewModel().Accelerations(cfg)
	assert.NoError(t, err)

	n := int(math.Floor(3600.0/1.0)) + 1
	assert.Equal(t, n, cfg.SampleCount())
	assert.Equal(t, n, grav.Len())
	assert.Equal(t, n, inert.Len())
	assert.Equal(t, n, total.Len())

	assert.Equal(t, 0.0, grav.Times[0])
	assert.InDelta(t, 3600.0, grav.Times[n-1], 1.0)
}

func TestGravityNormPreserved(t *testing.T) {
	grav, _, _, err := NewModel().Accelerations(testConfig())
	assert.NoError(t, err)

	for i := range grav.Vecs {
		norm := grav.Vecs[i].Norm()
		if math.Abs(norm - 1) > testEps {
			t.Fatalf("%d) |g| = %g, not 1.", i, norm)
		}
	}
}

func TestStaticFixture(t *testing.T) {
	cfg := testConfig()
	cfg.InnerRPM, cfg.OuterRPM = 0, 0

	grav, inert, _, err := NewModel().Accelerations(cfg)
	assert.NoError(t, err)

	for i := range inert.Vecs {
		assert.Equal(t, geom.Vec{}, inert.Vecs[i], "static inertial term")
		assert.Equal(t, grav.Vecs[0], grav.Vecs[i], "static gravity")
	}
	// With zero phase angles the body frame is the lab frame.
	assert.InDelta(t, 0, grav.Vecs[0][0], testEps)
	assert.InDelta(t, 0, grav.Vecs[0][1], testEps)
	assert.InDelta(t, -1, grav.Vecs[0][2], testEps)
}

func TestZeroOffset(t *testing.T) {
	cfg := testConfig()
	cfg.Offset = geom.Vec{}

	_, inert, _, err := NewModel().Accelerations(cfg)
	assert.NoError(t, err)

	for i := range inert.Vecs {
		if inert.Vecs[i].Norm() > testEps {
			t.Fatalf("%d) zero offset gave inertial acceleration %v.",
				i, inert.Vecs[i])
		}
	}
}

func TestTotalIsSum(t *testing.T) {
	grav, inert, total, err := NewModel().Accelerations(testConfig())
	assert.NoError(t, err)

	for i := range total.Vecs {
		var sum geom.Vec
		grav.Vecs[i].AddAt(&inert.Vecs[i], &sum)
		assert.Equal(t, sum, total.Vecs[i])
	}
}

func TestDeterministicAcrossWorkerCounts(t *testing.T) {
	mod1, mod8 := NewModel(), NewModel()
	mod1.Workers(1)
	mod8.Workers(8)

	grav1, inert1, _, err := mod1.Accelerations(testConfig())
	assert.NoError(t, err)
	grav8, inert8, _, err := mod8.Accelerations(testConfig())
	assert.NoError(t, err)

	assert.Equal(t, grav1.Vecs, grav8.Vecs)
	assert.Equal(t, inert1.Vecs, inert8.Vecs)
}

func TestPhaseAnglesRotateGravity(t *testing.T) {
	cfg := testConfig()
	cfg.InnerRPM, cfg.OuterRPM = 0, 0
	cfg.OuterPhaseDeg = 90

	grav, _, _, err := NewModel().Accelerations(cfg)
	assert.NoError(t, err)

	// A quarter turn of the outer frame about x carries lab -z onto body -y.
	assert.InDelta(t, 0, grav.Vecs[0][0], testEps)
	assert.InDelta(t, -1, grav.Vecs[0][1], testEps)
	assert.InDelta(t, 0, grav.Vecs[0][2], testEps)
}

func BenchmarkAccelerations(b *testing.B) {
	cfg := &Config{
		InnerRPM: 2, OuterRPM: 3,
		Offset: geom.Vec{0.05, 0.05, 0.05},
		DurationHours: 1, TimeStepSec: 1,
	}
	mod := NewModel()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, err := mod.Accelerations(cfg)
		if err != nil { b.Fatal(err.Error()) }
	}
}
