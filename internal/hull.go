package internal

import "github.com/pkg/errors"

// Compute the convex hull of a point set with the gift wrapping algorithm
// (Jarvis march).
//
// The result winds counterclockwise, starting from the leftmost point (lowest
// X, with ties going to the lowest Y). Only strict extreme points are
// included; points lying on a hull edge between two vertices are left out.
// Duplicate points are treated as one.
//
// Fewer than three distinct points, or a set where every point is collinear,
// has no polygonal hull and fails with ErrDegenerateHull.
func ConvexHull(points []Point) ([]Point, error) {
	unique := Dedupe(points)
	if len(unique) < 3 {
		return nil, errors.Wrapf(ErrDegenerateHull, "need at least 3 distinct points, got %d", len(unique))
	}
	if allCollinear(unique) {
		return nil, errors.Wrapf(ErrDegenerateHull, "all %d points are collinear", len(unique))
	}

	// The leftmost point is always on the hull, so it's where we start and stop
	start := unique[0]
	for _, p := range unique[1:] {
		if p.LeftOf(start) {
			start = p
		}
	}

	hull := []Point{start}
	current := start
	for {
		next := nextHullVertex(unique, current)
		if next == start {
			break
		}
		hull = append(hull, next)
		// Every step lands on a distinct extreme point, so we can never visit more
		// points than there are. If we do, floating point error has sent us in
		// circles.
		if len(hull) > len(unique) {
			fatalf("hull scan did not return to %v after %d vertices", start, len(hull))
		}
		current = next
	}
	return hull, nil
}

// Scan every point to find the hull vertex that follows current in
// counterclockwise order. Any point clockwise of the line current -> next is
// further out, so it becomes the new candidate. When a point is collinear with
// that line, the farther of the two wins, which skips over points in the
// middle of a hull edge.
func nextHullVertex(points []Point, current Point) Point {
	next := current
	for _, p := range points {
		if p == current {
			continue
		}
		if next == current {
			next = p
			continue
		}
		turn := Orientation(current, next, p)
		if turn < 0 || (turn == 0 && current.distanceSquaredTo(p) > current.distanceSquaredTo(next)) {
			next = p
		}
	}
	return next
}

// Expects at least two distinct points.
func allCollinear(points []Point) bool {
	a, b := points[0], points[1]
	for _, p := range points[2:] {
		if Orientation(a, b, p) != 0 {
			return false
		}
	}
	return true
}
