package sphere

import (
	"math"
	"runtime"

	"github.com/spinlab/clinostat/geom"
)

// Cell is the ordered triple of lattice generation indices closest to a path
// point, sorted ascending by distance. Ties are broken by generation index.
type Cell [3]int

// Scorer measures how much of the sphere's surface a path of unit-scale
// vectors has covered. It owns a single immutable Lattice, so the sphere
// sampling is generated once rather than per call.
//
// The nearest neighbor search is restricted to the lattice bucket of the
// path point's own octant. A lattice point just across an octant boundary
// can be nearer than every point inside the bucket and still never be
// selected. That approximation defines what a coverage cell is; "fixing" it
// would change the numeric meaning of the score.
type Scorer struct {
	lat *Lattice
	workers int
}

// NewScorer creates a Scorer over the given lattice. Every octant bucket
// needs at least 3 points to form cells.
func NewScorer(lat *Lattice) *Scorer {
	for oct := Octant(0); oct < NOctants; oct++ {
		if len(lat.Bucket(oct)) < 3 {
			panic("every octant bucket needs at least 3 lattice points.")
		}
	}
	return &Scorer{lat: lat, workers: runtime.NumCPU()}
}

// NewDefaultScorer creates a Scorer over the standard 1000-point lattice.
func NewDefaultScorer() *Scorer {
	return NewScorer(NewLattice(DefaultPoints))
}

// Workers sets the number of concurrent workers used when assigning cells.
func (sc *Scorer) Workers(n int) {
	if n < 1 { panic("worker count must be positive.") }
	sc.workers = n
}

// Score returns the number of distinct coverage cells visited by path. A
// path that revisits the same small region keeps mapping to the same cell
// and does not raise the score. An empty path scores 0.
func (sc *Scorer) Score(path []geom.Vec) int {
	return len(sc.CellPaths(path))
}

// CellPaths maps every distinct coverage cell visited by path to the path
// indices that landed in it, in ascending order.
func (sc *Scorer) CellPaths(path []geom.Vec) map[Cell][]int {
	cells := sc.cells(path)

	m := make(map[Cell][]int)
	for i, c := range cells {
		m[c] = append(m[c], i)
	}
	return m
}

// cells assigns a coverage cell to every path point. Cell assignment is
// independent across points, so the work is split over strided workers; the
// reduction in CellPaths stays single threaded.
func (sc *Scorer) cells(path []geom.Vec) []Cell {
	cells := make([]Cell, len(path))
	if len(path) == 0 { return cells }

	workers := sc.workers
	if workers > len(path) { workers = len(path) }

	out := make(chan int, workers)
	for id := 0; id < workers - 1; id++ {
		go sc.chanCells(id, workers, path, cells, out)
	}
	sc.chanCells(workers - 1, workers, path, cells, out)
	for i := 0; i < workers; i++ { <-out }

	return cells
}

func (sc *Scorer) chanCells(
	id, workers int, path []geom.Vec, cells []Cell, out chan<- int,
) {
	for i := id; i < len(path); i += workers {
		cells[i] = sc.cell(&path[i])
	}
	out <- id
}

// cell finds the 3 lattice points nearest to p within p's own octant
// bucket. Buckets enumerate in ascending generation order and candidates
// only replace strictly farther ones, so equal distances resolve to the
// earlier generation index.
func (sc *Scorer) cell(p *geom.Vec) Cell {
	bucket := sc.lat.Bucket(OctantOf(p))

	bestIdx := Cell{-1, -1, -1}
	bestDist := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}

	for _, idx := range bucket {
		d := p.DistSqr(&sc.lat.Points[idx])
		if d >= bestDist[2] { continue }

		if d < bestDist[0] {
			bestDist[0], bestDist[1], bestDist[2] =
				d, bestDist[0], bestDist[1]
			bestIdx[0], bestIdx[1], bestIdx[2] =
				idx, bestIdx[0], bestIdx[1]
		} else if d < bestDist[1] {
			bestDist[1], bestDist[2] = d, bestDist[1]
			bestIdx[1], bestIdx[2] = idx, bestIdx[1]
		} else {
			bestDist[2] = d
			bestIdx[2] = idx
		}
	}

	return bestIdx
}
