package internal

type Polygon struct {
	Points []Point
}

// Shoelace area. Positive when the points wind counterclockwise.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += determinant(vertex, nextVertex)
	}
	return area / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// Is the point inside or on the boundary of the polygon? This only holds for
// convex, counterclockwise polygons, like the ones ConvexHull produces: the
// point has to be on or to the left of every edge.
func (poly Polygon) ContainsPoint(p Point) bool {
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if Orientation(vertex, nextVertex, p) < 0 {
			return false
		}
	}
	return true
}

// Edges of the polygon as segments, closing back to the first point.
func (poly Polygon) Segments() []Segment {
	segments := make([]Segment, len(poly.Points))
	for i, vertex := range poly.Points {
		segments[i] = Segment{vertex, poly.Points[CircularIndex(i+1, len(poly.Points))]}
	}
	return segments
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}
