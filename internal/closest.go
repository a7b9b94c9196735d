package internal

import "github.com/pkg/errors"

// Find the pair of points with the smallest Euclidean distance between them.
//
// Every unordered pair is visited once, in (i, j) index order with i < j. The
// running minimum is only replaced on a strictly smaller distance, so among
// tied pairs, the first one visited wins. Duplicate points are a valid pair
// with distance zero.
func ClosestPair(points []Point) (Pair, error) {
	if len(points) < 2 {
		return Pair{}, errors.Wrapf(ErrInsufficientInput, "closest pair needs at least 2 points, got %d", len(points))
	}

	// Seeding from a real pair means the result always comes from the input,
	// even when every distance overflows to +Inf.
	best, _ := ClosestInRow(points, 0)
	for i := 1; i < len(points)-1; i++ {
		if candidate, ok := ClosestInRow(points, i); ok && candidate.Distance < best.Distance {
			best = candidate
		}
	}
	return best, nil
}

// The closest pair among (i, j) for every j > i. Returns false if i is the last
// index, since there is nothing to pair it with. This is the unit of work that
// the parallel variant fans out.
func ClosestInRow(points []Point, i int) (Pair, bool) {
	if i >= len(points)-1 {
		return Pair{}, false
	}
	best := Pair{A: points[i], B: points[i+1], Distance: points[i].DistanceTo(points[i+1])}
	for j := i + 2; j < len(points); j++ {
		distance := points[i].DistanceTo(points[j])
		if distance < best.Distance {
			best = Pair{A: points[i], B: points[j], Distance: distance}
		}
	}
	return best, true
}
