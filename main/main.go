package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/spinlab/clinostat/analyze"
	"github.com/spinlab/clinostat/io"
	"github.com/spinlab/clinostat/kinematics"
	"github.com/spinlab/clinostat/sphere"
)

var threads int

func main() {
	// The main function manages input sanitization and calls the secondary
	// main functions for each mode.

	var (
		simulateStr, scoreStr string
		exampleConfig string
	)
	vars := map[string]*string{
		"Simulate": &simulateStr,
		"Score": &scoreStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.IntVar(
		&threads, "Threads", runtime.NumCPU(),
		"Number of threads used. Default is the number of logical cores.",
	)
	flag.StringVar(
		&simulateStr, "Simulate", "",
		"Configuration file for [Simulation] mode: computes the "+
			"acceleration series of the configured fixture and writes them "+
			"along with a sphere coverage score.",
	)
	flag.StringVar(
		&scoreStr, "Score", "",
		"Configuration file for [Score] mode: scores an imported "+
			"accelerometer series against the sphere sampling.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Simulation' and 'Score'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Simulate":
		con, err := io.ReadSimulationConfig(simulateStr)
		if err != nil { log.Fatal(err.Error()) }

		if !con.ValidDurationHours() {
			log.Fatal("Invalid/non-existent 'DurationHours' value.")
		} else if !con.ValidTimeStepSec() {
			log.Fatal("Invalid 'TimeStepSec' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		}

		setupLog(con.LogFile)
		simulateMain(con)

	case "Score":
		con, err := io.ReadScoreConfig(scoreStr)
		if err != nil { log.Fatal(err.Error()) }

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidFormat() {
			log.Fatalf("Invalid 'Format' value, '%s'.", con.Format)
		} else if !con.ValidLatticePoints() {
			log.Fatal("Invalid 'LatticePoints' value.")
		}

		setupLog(con.LogFile)
		scoreMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Simulation":
			fmt.Println(io.ExampleSimulationFile)
		case "Score":
			fmt.Println(io.ExampleScoreFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Simulation' and 'Score'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive
// error if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but clinostat only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// setupLog redirects log statements to the given file, when set.
func setupLog(fname string) {
	if fname == "" { return }

	f, err := os.Create(fname)
	if err != nil { log.Fatal(err.Error()) }
	log.SetOutput(f)
}

// simulateMain computes the configured fixture's acceleration series,
// writes the time-averaged series, and reports coverage scores.
func simulateMain(con *io.SimulationConfig) {
	cfg := con.KinematicsConfig()
	if err := cfg.Check(); err != nil { log.Fatal(err.Error()) }

	mod := kinematics.NewModel()
	mod.Workers(threads)

	log.Printf("Simulating %g h at %g s steps (%d samples).",
		cfg.DurationHours, cfg.TimeStepSec, cfg.SampleCount())
	grav, inert, total, err := mod.Accelerations(cfg)
	if err != nil { log.Fatal(err.Error()) }

	if err = os.MkdirAll(con.Output, 0777); err != nil {
		log.Fatal(err.Error())
	}

	gravAvg := analyze.RunningMean(grav)
	inertAvg := analyze.RunningMean(inert)
	gravMags := analyze.Magnitudes(gravAvg.Vecs)
	inertMags := analyze.Magnitudes(inertAvg.Vecs)

	log.Printf("Mean time-averaged |g| = %.3g g.", analyze.Mean(gravMags))
	log.Printf("Mean time-averaged |a| = %.3g g.", analyze.Mean(inertMags))

	writeSeries(con.Output, "g_avg_components.txt", gravAvg)
	writeSeries(con.Output, "non_g_avg_components.txt", inertAvg)
	writeScalars(con.Output, "g_avg_magnitude.txt", grav.Times, gravMags)
	writeScalars(con.Output, "non_g_avg_magnitude.txt", inert.Times, inertMags)
	writeSeries(con.Output, "total_accel.txt", total)

	sc := sphere.NewDefaultScorer()
	sc.Workers(threads)
	score := sc.Score(total.Vecs)
	log.Printf("Coverage score: %d.", score)

	summary := fmt.Sprintf("Score %d\n", score)
	if con.ValidAnalysisWindow() {
		lo, hi, err := analyze.Window(
			total.Times, con.StartAnalysisHours, con.EndAnalysisHours,
		)
		if err != nil { log.Fatal(err.Error()) }

		windowScore := sc.Score(total.Vecs[lo:hi])
		log.Printf("Window [%g h, %g h] mean |g| = %.3g g, mean |a| = %.3g "+
			"g, coverage score %d.",
			con.StartAnalysisHours, con.EndAnalysisHours,
			analyze.Mean(gravMags[lo:hi]), analyze.Mean(inertMags[lo:hi]),
			windowScore,
		)
		summary += fmt.Sprintf("WindowScore %d\n", windowScore)
	}

	writeSummary(con.Output, summary)
}

// scoreMain imports an accelerometer series and reports its coverage score.
func scoreMain(con *io.ScoreConfig) {
	pd, err := io.ImportAccel(con.Input, con.Format)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Imported %d samples from %s.", pd.Len(), con.Input)

	sc := sphere.NewScorer(sphere.NewLattice(con.LatticePoints))
	sc.Workers(threads)
	score := sc.Score(pd.Path)
	log.Printf("Coverage score: %d.", score)

	summary := fmt.Sprintf("Score %d\n", score)
	if con.ValidAnalysisWindow() {
		lo, hi, err := analyze.Window(
			pd.Times, con.StartAnalysisHours, con.EndAnalysisHours,
		)
		if err != nil { log.Fatal(err.Error()) }

		windowScore := sc.Score(pd.Path[lo:hi])
		log.Printf("Window [%g h, %g h] coverage score: %d.",
			con.StartAnalysisHours, con.EndAnalysisHours, windowScore)
		summary += fmt.Sprintf("WindowScore %d\n", windowScore)
	}

	fmt.Print(summary)
	if con.ValidOutput() {
		if err = os.MkdirAll(con.Output, 0777); err != nil {
			log.Fatal(err.Error())
		}
		writeSummary(con.Output, summary)
	}
}

func writeSeries(dir, name string, s kinematics.Series) {
	if err := io.WriteVecSeries(path.Join(dir, name), s.Times, s.Vecs); err != nil {
		log.Fatal(err.Error())
	}
}

func writeScalars(dir, name string, times, xs []float64) {
	if err := io.WriteScalarSeries(path.Join(dir, name), times, xs); err != nil {
		log.Fatal(err.Error())
	}
}

func writeSummary(dir, summary string) {
	f, err := os.Create(path.Join(dir, "distribution.txt"))
	if err != nil { log.Fatal(err.Error()) }
	defer f.Close()

	if _, err = f.WriteString(summary); err != nil { log.Fatal(err.Error()) }
}
