// Package advanced has variants of the plane queries for callers with large
// inputs. They fan the pairwise enumeration out over goroutines, but always
// produce exactly what the sequential versions do.
package advanced

import (
	"runtime"

	"github.com/osuushi/plane/internal"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type Point = internal.Point
type Segment = internal.Segment
type Pair = internal.Pair

func workerCount(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}

// Closest pair, with each row (i, j > i) of the pair triangle handled as a
// separate task. Ties are resolved by the smallest (i, j), which is the same
// pair the sequential scan finds first, so the result doesn't depend on which
// goroutine finishes first.
func ClosestPairParallel(points []Point, workers int) (Pair, error) {
	if len(points) < 2 {
		return Pair{}, errors.Wrapf(internal.ErrInsufficientInput, "closest pair needs at least 2 points, got %d", len(points))
	}

	// Row i can only ever write rows[i], so there is nothing to lock.
	rows := make([]internal.Pair, len(points)-1)
	var g errgroup.Group
	g.SetLimit(workerCount(workers))
	for i := range rows {
		i := i
		g.Go(func() error {
			rows[i], _ = internal.ClosestInRow(points, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Pair{}, err
	}

	// Within a row the lowest j already won ties, so taking the first row with
	// the smallest distance gives the smallest (i, j).
	best := rows[0]
	for _, candidate := range rows[1:] {
		if candidate.Distance < best.Distance {
			best = candidate
		}
	}
	return best, nil
}

// Segment intersections, with each row handled as a separate task. Rows are
// concatenated in order, so the output matches the sequential version entry
// for entry.
func SegmentIntersectionsParallel(segments []Segment, workers int) []Point {
	result := []Point{}
	if len(segments) < 2 {
		return result
	}

	rows := make([][]Point, len(segments))
	var g errgroup.Group
	g.SetLimit(workerCount(workers))
	for i := range rows {
		i := i
		g.Go(func() error {
			rows[i] = internal.IntersectionsInRow(segments, i)
			return nil
		})
	}
	// Tasks never fail
	_ = g.Wait()

	for _, row := range rows {
		result = append(result, row...)
	}
	return result
}
