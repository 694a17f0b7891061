package io

import (
	"encoding/csv"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/phil-mansfield/table"

	"github.com/spinlab/clinostat/geom"
	"github.com/spinlab/clinostat/kinematics"
)

// PathData is an imported accelerometer series. Times are seconds from the
// first sample and accelerations are in units of standard gravity.
type PathData struct {
	Times []float64
	Path []geom.Vec
}

// Len returns the number of samples.
func (pd *PathData) Len() int { return len(pd.Path) }

func formatErr() error {
	return fmt.Errorf(
		"Unrecognized accelerometer file format. Supported formats are:\n" +
			"(1) timestamp,x_acc,y_acc,z_acc header with m/s^2 rows\n" +
			"(2) Date (yyyy-mm-dd), Time (hh:mm:ss), X, Y, Z\n" +
			"(3) Time (s), X, Y, Z",
	)
}

// ImportAccel reads an accelerometer series from fname. format selects one
// of "SciSpinner", "Timestamped", or "Plain"; an empty format auto-detects.
func ImportAccel(fname, format string) (*PathData, error) {
	switch format {
	case "SciSpinner":
		return ImportSciSpinner(fname)
	case "Timestamped":
		return ImportTimestamped(fname)
	case "Plain":
		return ImportPlain(fname)
	case "":
	default:
		return nil, fmt.Errorf("Unrecognized format flag, '%s'.", format)
	}

	if pd, err := ImportSciSpinner(fname); err == nil { return pd, nil }
	if pd, err := ImportTimestamped(fname); err == nil { return pd, nil }
	return ImportPlain(fname)
}

// ImportSciSpinner reads the sci-spinner logger format: a CSV file with a
// header naming the timestamp, x_acc, y_acc, and z_acc columns and raw
// m/s^2 acceleration values, which are normalized to g units on import.
func ImportSciSpinner(fname string) (*PathData, error) {
	f, err := os.Open(fname)
	if err != nil { return nil, err }
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil { return nil, err }
	if len(rows) < 2 { return nil, formatErr() }

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}
	tIdx, tOk := cols["timestamp"]
	xIdx, xOk := cols["x_acc"]
	yIdx, yOk := cols["y_acc"]
	zIdx, zOk := cols["z_acc"]
	if !tOk || !xOk || !yOk || !zOk { return nil, formatErr() }

	pd := &PathData{}
	for _, row := range rows[1:] {
		t, err := strconv.ParseFloat(row[tIdx], 64)
		if err != nil { return nil, formatErr() }
		v, err := parseVec(row[xIdx], row[yIdx], row[zIdx])
		if err != nil { return nil, err }

		v.ScaleSelf(1 / kinematics.G0)
		pd.Times = append(pd.Times, t)
		pd.Path = append(pd.Path, v)
	}

	rebase(pd.Times)
	return pd, nil
}

var stampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"1/2/2006 15:04:05",
}

// parseStamp parses two tokens as a date and a time of day, in either order.
func parseStamp(tok1, tok2 string) (time.Time, error) {
	for _, layout := range stampLayouts {
		if t, err := time.Parse(layout, tok1 + " " + tok2); err == nil {
			return t, nil
		}
		if t, err := time.Parse(layout, tok2 + " " + tok1); err == nil {
			return t, nil
		}
	}
	return time.Time{}, formatErr()
}

// ImportTimestamped reads rows of "date time x y z", comma or whitespace
// separated, with accelerations already in g units. Times are rebased to
// seconds from the first stamp.
func ImportTimestamped(fname string) (*PathData, error) {
	toks, err := tokens(fname)
	if err != nil { return nil, err }
	if len(toks) == 0 || len(toks) % 5 != 0 { return nil, formatErr() }

	pd := &PathData{}
	var t0 time.Time
	for k := 0; k < len(toks); k += 5 {
		t, err := parseStamp(toks[k], toks[k+1])
		if err != nil { return nil, err }
		v, err := parseVec(toks[k+2], toks[k+3], toks[k+4])
		if err != nil { return nil, err }

		if k == 0 { t0 = t }
		pd.Times = append(pd.Times, t.Sub(t0).Seconds())
		pd.Path = append(pd.Path, v)
	}
	return pd, nil
}

// ImportPlain reads rows of "seconds x y z" with accelerations already in g
// units. Comma separated files are tokenized directly; whitespace tables go
// through table.ReadTable.
func ImportPlain(fname string) (*PathData, error) {
	buf, err := ioutil.ReadFile(fname)
	if err != nil { return nil, err }

	if !strings.Contains(string(buf), ",") {
		cols, err := table.ReadTable(fname, []int{0, 1, 2, 3}, nil)
		if err != nil { return nil, formatErr() }

		pd := &PathData{Times: cols[0], Path: make([]geom.Vec, len(cols[0]))}
		for i := range pd.Path {
			pd.Path[i] = geom.Vec{cols[1][i], cols[2][i], cols[3][i]}
		}
		rebase(pd.Times)
		return pd, nil
	}

	toks := splitTokens(string(buf))
	if len(toks) == 0 || len(toks) % 4 != 0 { return nil, formatErr() }

	pd := &PathData{}
	for k := 0; k < len(toks); k += 4 {
		t, err := strconv.ParseFloat(toks[k], 64)
		if err != nil { return nil, formatErr() }
		v, err := parseVec(toks[k+1], toks[k+2], toks[k+3])
		if err != nil { return nil, err }

		pd.Times = append(pd.Times, t)
		pd.Path = append(pd.Path, v)
	}

	rebase(pd.Times)
	return pd, nil
}

func parseVec(xTok, yTok, zTok string) (geom.Vec, error) {
	x, xErr := strconv.ParseFloat(xTok, 64)
	y, yErr := strconv.ParseFloat(yTok, 64)
	z, zErr := strconv.ParseFloat(zTok, 64)
	if xErr != nil || yErr != nil || zErr != nil {
		return geom.Vec{}, formatErr()
	}
	return geom.Vec{x, y, z}, nil
}

func tokens(fname string) ([]string, error) {
	buf, err := ioutil.ReadFile(fname)
	if err != nil { return nil, err }
	return splitTokens(string(buf)), nil
}

func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
}

func rebase(times []float64) {
	if len(times) == 0 { return }
	t0 := times[0]
	for i := range times { times[i] -= t0 }
}

// WriteVecSeries writes a whitespace table of time-in-hours followed by the
// three vector components, one sample per row.
func WriteVecSeries(fname string, times []float64, vecs []geom.Vec) error {
	f, err := os.Create(fname)
	if err != nil { return err }
	defer f.Close()

	for i := range vecs {
		_, err = fmt.Fprintf(
			f, "%.10g %.10g %.10g %.10g\n",
			times[i] / 3600, vecs[i][0], vecs[i][1], vecs[i][2],
		)
		if err != nil { return err }
	}
	return nil
}

// WriteScalarSeries writes a whitespace table of time-in-hours and a scalar,
// one sample per row.
func WriteScalarSeries(fname string, times, xs []float64) error {
	f, err := os.Create(fname)
	if err != nil { return err }
	defer f.Close()

	for i := range xs {
		_, err = fmt.Fprintf(f, "%.10g %.10g\n", times[i] / 3600, xs[i])
		if err != nil { return err }
	}
	return nil
}
