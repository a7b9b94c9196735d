package internal

import (
	"fmt"
	"math"
)

// Orientation of the turn p -> q -> r, as the cross product of (q - p) and
// (r - p). Positive for a counterclockwise turn, negative for clockwise, and
// zero when the points are collinear. Everything that needs to know which side
// of a line a point is on goes through this function, so there is only one
// sign convention in the package.
func Orientation(p, q, r Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Squared distance, for comparisons where the root doesn't matter.
func (p Point) distanceSquaredTo(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return dx*dx + dy*dy
}

// Round both coordinates independently to the given number of decimal places.
// A non-positive count leaves the point at full precision.
func (p Point) Round(decimals int) Point {
	if decimals <= 0 {
		return p
	}
	scale := math.Pow(10, float64(decimals))
	return Point{X: roundScaled(p.X, scale), Y: roundScaled(p.Y, scale)}
}

// Largest magnitude below which a float64 can still have a fractional part.
const maxFractional = 1 << 52

// Round x to a multiple of 1/scale. When x*scale is already a whole number (or
// overflows), x has no digits at that position to round away, so it comes back
// unchanged. This also covers a scale that has itself overflowed.
func roundScaled(x, scale float64) float64 {
	scaled := x * scale
	if math.IsInf(scale, 0) || math.IsNaN(scaled) || math.Abs(scaled) >= maxFractional {
		return x
	}
	return math.Round(scaled) / scale
}

// Lexicographic ordering by X, then Y. The leftmost point of a set under this
// ordering is always a hull vertex.
func (p Point) LeftOf(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
