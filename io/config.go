package io

import (
	"gopkg.in/gcfg.v1"

	"github.com/spinlab/clinostat/geom"
	"github.com/spinlab/clinostat/kinematics"
)

const (
	ExampleSimulationFile = `[Simulation]

#######################
# Required Parameters #
#######################

# Length of the simulated run in hours.
DurationHours = 24

# Rotation rates of the inner and outer frames in revolutions per minute.
# Either may be zero.
InnerRPM = 2
OuterRPM = 3

#######################
# Optional Parameters #
#######################

# Offset of the sample point from the rotation centers, in meters. A zero
# offset is fine: the inertial acceleration is then zero everywhere and only
# gravity sweeps the sphere.
# OffsetX = 0.05
# OffsetY = 0.05
# OffsetZ = 0.05

# Initial phase angles of the two frames, in degrees. Default is 0.
# InnerPhaseDeg = 0
# OuterPhaseDeg = 0

# Spacing of the simulated time grid in seconds. Default is 1.
# TimeStepSec = 1

# Analysis window, in hours from the start of the run. When both bounds are
# set, window averages and a windowed coverage score are reported alongside
# the full-run values.
# StartAnalysisHours = 1
# EndAnalysisHours = 2

# Directory which output series files will be written to. Required when
# running the command line tool; the library itself writes nothing.
Output = path/to/output/dir

# Location to write log statements to. Default is stderr.
# LogFile = log.out`

	ExampleScoreFile = `[Score]

#######################
# Required Parameters #
#######################

# Accelerometer series to score. Three formats are recognized:
#
#   SciSpinner  - CSV with a "timestamp,x_acc,y_acc,z_acc" header row.
#                 Accelerations are raw m/s^2 and are divided by standard
#                 gravity (9.80665) on import.
#   Timestamped - rows of "date time x y z", e.g.
#                 2001-11-21 01:00:00 0.5 0.5 0.5. Values already in g.
#   Plain       - rows of "seconds x y z", e.g. 3600 0.5 0.5 0.5.
#                 Values already in g.
#
# Comma and whitespace separators are both accepted.
Input = path/to/accel.csv

#######################
# Optional Parameters #
#######################

# Force one of the formats above instead of auto-detecting:
# Format = SciSpinner

# Size of the sphere sampling used by the coverage score. Default is 1000.
# LatticePoints = 1000

# Analysis window, in hours from the first sample. When both bounds are set
# a windowed coverage score is reported alongside the full-path score.
# StartAnalysisHours = 1
# EndAnalysisHours = 2

# Directory which the score summary will be written to. Default is stdout
# only.
# Output = path/to/output/dir

# Location to write log statements to. Default is stderr.
# LogFile = log.out`
)

type SimulationConfig struct {
	// Required
	DurationHours float64
	InnerRPM, OuterRPM float64

	// Optional
	OffsetX, OffsetY, OffsetZ float64
	InnerPhaseDeg, OuterPhaseDeg float64
	TimeStepSec float64
	StartAnalysisHours, EndAnalysisHours float64
	Output string
	LogFile string
}

type SimulationWrapper struct {
	Simulation SimulationConfig
}

func DefaultSimulationWrapper() *SimulationWrapper {
	con := SimulationConfig{}
	con.TimeStepSec = 1
	con.StartAnalysisHours = -1
	con.EndAnalysisHours = -1
	return &SimulationWrapper{con}
}

func (con *SimulationConfig) ValidDurationHours() bool {
	return con.DurationHours > 0
}
func (con *SimulationConfig) ValidTimeStepSec() bool {
	return con.TimeStepSec > 0
}
func (con *SimulationConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SimulationConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SimulationConfig) ValidAnalysisWindow() bool {
	return con.StartAnalysisHours >= 0 && con.EndAnalysisHours >= 0
}

// KinematicsConfig converts con into the model's Config.
func (con *SimulationConfig) KinematicsConfig() *kinematics.Config {
	return &kinematics.Config{
		InnerRPM: con.InnerRPM,
		OuterRPM: con.OuterRPM,
		InnerPhaseDeg: con.InnerPhaseDeg,
		OuterPhaseDeg: con.OuterPhaseDeg,
		Offset: geom.Vec{con.OffsetX, con.OffsetY, con.OffsetZ},
		DurationHours: con.DurationHours,
		TimeStepSec: con.TimeStepSec,
	}
}

type ScoreConfig struct {
	// Required
	Input string

	// Optional
	Format string
	LatticePoints int
	StartAnalysisHours, EndAnalysisHours float64
	Output string
	LogFile string
}

type ScoreWrapper struct {
	Score ScoreConfig
}

func DefaultScoreWrapper() *ScoreWrapper {
	con := ScoreConfig{}
	con.LatticePoints = 1000
	con.StartAnalysisHours = -1
	con.EndAnalysisHours = -1
	return &ScoreWrapper{con}
}

func (con *ScoreConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *ScoreConfig) ValidFormat() bool {
	switch con.Format {
	case "", "SciSpinner", "Timestamped", "Plain":
		return true
	}
	return false
}
func (con *ScoreConfig) ValidLatticePoints() bool {
	return con.LatticePoints >= 2
}
func (con *ScoreConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *ScoreConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *ScoreConfig) ValidAnalysisWindow() bool {
	return con.StartAnalysisHours >= 0 && con.EndAnalysisHours >= 0
}

// ReadSimulationConfig reads and default-fills a [Simulation] config file.
func ReadSimulationConfig(fname string) (*SimulationConfig, error) {
	wrap := DefaultSimulationWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return &wrap.Simulation, nil
}

// ReadScoreConfig reads and default-fills a [Score] config file.
func ReadScoreConfig(fname string) (*ScoreConfig, error) {
	wrap := DefaultScoreWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return &wrap.Score, nil
}
