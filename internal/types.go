package internal

// Points and segments are plain values. Two points with equal coordinates are
// interchangeable, so they can be compared with == and used as map keys.
type Point struct {
	X float64
	Y float64
}

// A segment is an ordered pair of endpoints. The endpoints may coincide, in
// which case the segment is degenerate.
type Segment struct {
	Start Point
	End   Point
}

// The closest pair of a point set. A always comes from the lower input index.
type Pair struct {
	A, B     Point
	Distance float64
}

type Circle struct {
	Center Point
	Radius float64
}

type PointSet map[Point]struct{}
