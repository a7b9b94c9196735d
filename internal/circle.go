package internal

import "github.com/pkg/errors"

// The largest circle centered inside the convex hull of the points that
// contains none of them. This needs a Voronoi diagram to do properly, which
// doesn't exist yet, so it always fails.
func LargestEmptyCircle(points []Point) (Circle, error) {
	return Circle{}, errors.Wrapf(ErrNotImplemented, "largest empty circle of %d points", len(points))
}
