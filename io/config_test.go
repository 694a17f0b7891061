package io

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gcfg.v1"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "clinostat_test")
	if err != nil { t.Fatal(err.Error()) }
	t.Cleanup(func() { os.RemoveAll(dir) })

	fname := path.Join(dir, name)
	if err := ioutil.WriteFile(fname, []byte(body), 0666); err != nil {
		t.Fatal(err.Error())
	}
	return fname
}

func TestReadSimulationConfig(t *testing.T) {
	fname := writeTemp(t, "sim.cfg", `[Simulation]
DurationHours = 24
InnerRPM = 2
OuterRPM = 3
OffsetX = 0.05
Output = out`)

	con, err := ReadSimulationConfig(fname)
	assert.NoError(t, err)

	assert.Equal(t, 24.0, con.DurationHours)
	assert.Equal(t, 2.0, con.InnerRPM)
	assert.Equal(t, 3.0, con.OuterRPM)
	assert.Equal(t, 0.05, con.OffsetX)
	assert.Equal(t, 1.0, con.TimeStepSec, "default time step")

	assert.True(t, con.ValidDurationHours())
	assert.True(t, con.ValidTimeStepSec())
	assert.True(t, con.ValidOutput())
	assert.False(t, con.ValidLogFile())
	assert.False(t, con.ValidAnalysisWindow())

	kCfg := con.KinematicsConfig()
	assert.NoError(t, kCfg.Check())
	assert.Equal(t, 0.05, kCfg.Offset[0])
}

func TestReadScoreConfig(t *testing.T) {
	fname := writeTemp(t, "score.cfg", `[Score]
Input = accel.csv
Format = SciSpinner
StartAnalysisHours = 1
EndAnalysisHours = 2`)

	con, err := ReadScoreConfig(fname)
	assert.NoError(t, err)

	assert.Equal(t, "accel.csv", con.Input)
	assert.Equal(t, 1000, con.LatticePoints, "default lattice size")
	assert.True(t, con.ValidInput())
	assert.True(t, con.ValidFormat())
	assert.True(t, con.ValidAnalysisWindow())

	con.Format = "Fibonacci"
	assert.False(t, con.ValidFormat())
}

func TestExampleConfigsParse(t *testing.T) {
	fname := writeTemp(t, "sim.cfg", ExampleSimulationFile)
	_, err := ReadSimulationConfig(fname)
	assert.NoError(t, err)

	fname = writeTemp(t, "score.cfg", ExampleScoreFile)
	con, err := ReadScoreConfig(fname)
	assert.NoError(t, err)
	assert.True(t, con.ValidInput())
}

func TestInvalidConfigFails(t *testing.T) {
	fname := writeTemp(t, "sim.cfg", `[Simulation]
DurationHours = one day`)

	wrap := DefaultSimulationWrapper()
	assert.Error(t, gcfg.ReadFileInto(wrap, fname))
}
