package plane

import "github.com/paulmach/orb"

// Conversions to and from github.com/paulmach/orb geometries.

func FromOrbPoint(p orb.Point) Point {
	return Point{X: p.X(), Y: p.Y()}
}

func FromOrbMultiPoint(mp orb.MultiPoint) []Point {
	points := make([]Point, len(mp))
	for i, p := range mp {
		points[i] = FromOrbPoint(p)
	}
	return points
}

// Each consecutive pair of vertices becomes a segment.
func FromOrbLineString(ls orb.LineString) []Segment {
	if len(ls) < 2 {
		return nil
	}
	segments := make([]Segment, len(ls)-1)
	for i := range segments {
		segments[i] = Segment{Start: FromOrbPoint(ls[i]), End: FromOrbPoint(ls[i+1])}
	}
	return segments
}

func ToOrbPoint(p Point) orb.Point {
	return orb.Point{p.X, p.Y}
}

// A closed ring through the points, with the first point repeated at the end as
// orb expects. Pass a hull from ConvexHull to get a CCW ring.
func ToOrbRing(points []Point) orb.Ring {
	if len(points) == 0 {
		return nil
	}
	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, ToOrbPoint(p))
	}
	return append(ring, ring[0])
}
