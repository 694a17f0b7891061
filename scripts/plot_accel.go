/*plot_accel plots the time-averaged acceleration series written by the
clinostat Simulate mode.

Usage:
    $ plot_accel output_dir plot_prefix

Reads g_avg_magnitude.txt, non_g_avg_magnitude.txt, g_avg_components.txt,
and non_g_avg_components.txt from output_dir and writes
<plot_prefix>_magnitude.png and <plot_prefix>_components.png.
*/
package main

import (
	"fmt"
	"log"
	"os"
	"path"

	"github.com/phil-mansfield/table"
	plt "github.com/phil-mansfield/pyplot"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Required file use: $ %s output_dir plot_prefix", os.Args[0])
	}

	dir, prefix := os.Args[1], os.Args[2]

	gTimes, gMags := readScalars(path.Join(dir, "g_avg_magnitude.txt"))
	aTimes, aMags := readScalars(path.Join(dir, "non_g_avg_magnitude.txt"))

	plt.Figure()
	plt.Plot(gTimes, gMags, "b", plt.LW(2))
	plt.Plot(aTimes, aMags, "r", plt.LW(2))
	plt.Title("Time-Averaged Acceleration Magnitude")
	plt.XLabel("Time (h)", plt.FontSize(16))
	plt.YLabel("Acceleration (g)", plt.FontSize(16))
	plt.Grid(plt.Axis("both"))
	plt.SaveFig(fmt.Sprintf("%s_magnitude.png", prefix))

	times, xs, ys, zs := readComponents(path.Join(dir, "g_avg_components.txt"))

	plt.Figure()
	plt.Plot(times, xs, "g", plt.LW(2))
	plt.Plot(times, ys, "r", plt.LW(2))
	plt.Plot(times, zs, "m", plt.LW(2))
	plt.Title("Time-Averaged Gravitational Acceleration")
	plt.XLabel("Time (h)", plt.FontSize(16))
	plt.YLabel("Acceleration (g)", plt.FontSize(16))
	plt.Grid(plt.Axis("both"))
	plt.SaveFig(fmt.Sprintf("%s_components.png", prefix))

	plt.Execute()
}

func readScalars(fname string) (times, xs []float64) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil { log.Fatal(err.Error()) }
	return cols[0], cols[1]
}

func readComponents(fname string) (times, xs, ys, zs []float64) {
	cols, err := table.ReadTable(fname, []int{0, 1, 2, 3}, nil)
	if err != nil { log.Fatal(err.Error()) }
	return cols[0], cols[1], cols[2], cols[3]
}
