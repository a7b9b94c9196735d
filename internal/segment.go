package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

func (s Segment) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

func (s Segment) IsDegenerate() bool {
	return s.Start == s.End
}

// Does this segment properly cross the other one? Each segment's endpoints have
// to lie strictly on opposite sides of the other segment's line, so segments
// that only touch at an endpoint, or that overlap along the same line, do not
// count.
func (s Segment) Intersects(other Segment) bool {
	d1 := Sign(Orientation(s.Start, s.End, other.Start))
	d2 := Sign(Orientation(s.Start, s.End, other.End))
	d3 := Sign(Orientation(other.Start, other.End, s.Start))
	d4 := Sign(Orientation(other.Start, other.End, s.End))

	return d1*d2 < 0 && d3*d4 < 0
}

// Find the point where this segment crosses the other one.
//
// Parallel or collinear segments (including zero length ones) have no single
// crossing point, and fail with ErrDegenerate. Otherwise, if the segments don't
// properly intersect, this fails with ErrNoIntersection.
func (s Segment) IntersectionWith(other Segment) (Point, error) {
	if s.divisor(other) == 0 {
		return Point{}, errors.Wrapf(ErrDegenerate, "segments %v and %v are parallel", s, other)
	}
	if !s.Intersects(other) {
		return Point{}, errors.Wrapf(ErrNoIntersection, "segments %v and %v", s, other)
	}
	return s.solve(other), nil
}

// Like IntersectionWith, rounding the result to the given number of decimal
// places. A non-positive count gives full precision.
func IntersectionPoint(s1, s2 Segment, decimals int) (Point, error) {
	p, err := s1.IntersectionWith(s2)
	if err != nil {
		return Point{}, err
	}
	return p.Round(decimals), nil
}

// The crossing point, if the segments properly cross. The sign tests and the
// divisor come from different float expressions, so a nearly parallel pair can
// pass Intersects with a divisor that rounds to zero. Those are reported as not
// crossing rather than dividing by zero.
func (s Segment) crossing(other Segment) (Point, bool) {
	if !s.Intersects(other) || s.divisor(other) == 0 {
		return Point{}, false
	}
	return s.solve(other), true
}

// 2x2 determinant, with each point standing in for a matrix row.
func determinant(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Differences between the segments' endpoints. The X differences form one
// "point" and the Y differences another, so that Cramer's rule can be applied
// with determinant().
func (s Segment) differences(other Segment) (diffX, diffY Point) {
	diffX = Point{s.Start.X - s.End.X, other.Start.X - other.End.X}
	diffY = Point{s.Start.Y - s.End.Y, other.Start.Y - other.End.Y}
	return
}

func (s Segment) divisor(other Segment) float64 {
	return determinant(s.differences(other))
}

// Solve for the crossing of the two supporting lines with Cramer's rule. The
// caller must make sure the divisor is nonzero.
func (s Segment) solve(other Segment) Point {
	diffX, diffY := s.differences(other)
	divisor := determinant(diffX, diffY)
	d := Point{determinant(s.Start, s.End), determinant(other.Start, other.End)}
	return Point{
		X: determinant(d, diffX) / divisor,
		Y: determinant(d, diffY) / divisor,
	}
}

func (s Segment) String() string {
	return fmt.Sprintf("%v %v", s.Start, s.End)
}
