package internal

// Tolerance is only used for comparisons of derived values, like checking that
// an intersection point lies on a segment. The orientation test itself is
// always exact.
const Tolerance = 1e-9

// Sign of a value as -1, 0 or 1, with no tolerance.
func Sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s PointSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

// Unique points in their original order.
func Dedupe(points []Point) []Point {
	seen := make(PointSet, len(points))
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if seen.Contains(p) {
			continue
		}
		seen.Add(p)
		result = append(result, p)
	}
	return result
}
