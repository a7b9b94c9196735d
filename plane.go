// A small planar computational geometry package for Go.
//
// Given 2D points or line segments, this package finds the closest pair of
// points, every point where two segments properly cross, and the convex hull of
// a point set. All operations are pure functions over their inputs; nothing is
// retained between calls.
package plane

import "github.com/osuushi/plane/internal"

type Point = internal.Point
type Segment = internal.Segment
type Pair = internal.Pair
type Circle = internal.Circle
type Polygon = internal.Polygon

// Errors reported by the queries. They are wrapped with context, so compare
// with errors.Is.
var (
	ErrInsufficientInput = internal.ErrInsufficientInput
	ErrDegenerateHull    = internal.ErrDegenerateHull
	ErrNoIntersection    = internal.ErrNoIntersection
	ErrDegenerate        = internal.ErrDegenerate
	ErrNotImplemented    = internal.ErrNotImplemented
)

// Swapped out in tests to exercise the panic recovery.
var convexHull = internal.ConvexHull

// Orientation of the turn p -> q -> r. Positive when counterclockwise,
// negative when clockwise, zero when collinear.
func Orientation(p, q, r Point) float64 {
	return internal.Orientation(p, q, r)
}

// Find the two points closest to each other. Ties go to the pair that comes
// first in input order. Needs at least two points.
func ClosestPair(points ...Point) (Pair, error) {
	return internal.ClosestPair(points)
}

// Find every point where two of the segments properly cross, one entry per
// crossing pair. Segments that only touch, or overlap along a line, don't
// count. Fewer than two segments give an empty result.
func SegmentIntersections(segments ...Segment) []Point {
	return internal.SegmentIntersections(segments)
}

// Compute the convex hull, counterclockwise from the leftmost point, with no
// collinear points along the edges.
//
// Fewer than three distinct points, or only collinear ones, fail with
// ErrDegenerateHull.
func ConvexHull(points ...Point) (hull []Point, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			hull = nil
			err = recoveredErr
		}
	}()
	return convexHull(points)
}

// Find where two segments cross, rounded to the given number of decimal
// places. Pass zero or a negative count for full precision.
//
// Parallel segments fail with ErrDegenerate, and segments that don't properly
// cross fail with ErrNoIntersection.
func IntersectionPoint(s1, s2 Segment, decimals int) (Point, error) {
	return internal.IntersectionPoint(s1, s2, decimals)
}

// Reserved for finding the largest circle centered in the convex hull that
// contains none of the points. Always fails with ErrNotImplemented.
func LargestEmptyCircle(points ...Point) (Circle, error) {
	return internal.LargestEmptyCircle(points)
}
