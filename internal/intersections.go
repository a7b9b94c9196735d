package internal

// Find every point where two of the segments properly cross.
//
// Pairs are enumerated by index (i < j), rather than by value, so two segments
// that happen to be equal are still both considered. Each crossing pair
// contributes exactly one point, in enumeration order, and points are not
// deduplicated: three segments crossing at one spot give three entries.
func SegmentIntersections(segments []Segment) []Point {
	result := []Point{}
	if len(segments) < 2 {
		return result
	}
	for i := range segments {
		result = append(result, IntersectionsInRow(segments, i)...)
	}
	return result
}

// Crossing points of segment i with every segment after it.
func IntersectionsInRow(segments []Segment, i int) []Point {
	var result []Point
	for j := i + 1; j < len(segments); j++ {
		if p, ok := segments[i].crossing(segments[j]); ok {
			result = append(result, p)
		}
	}
	return result
}
