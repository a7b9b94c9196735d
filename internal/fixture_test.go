package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into geometry. This is not a full (or even
// correct) svg parser. Circles become points, lines become segments, and the
// first polygon, if any, is the expected convex hull. The hull is normalized to
// wind CCW from its leftmost point, which is how ConvexHull reports it. If
// anything goes wrong, it bails.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type Fixture struct {
	Points   []Point
	Segments []Segment
	Hull     Polygon
}

func LoadFixture(name string) *Fixture {
	file, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer file.Close()
	rootEl, err := svgparser.Parse(file, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	fixture := &Fixture{}
	for _, circleEl := range rootEl.FindAll("circle") {
		fixture.Points = append(fixture.Points, Point{
			parseFloat(circleEl.Attributes["cx"]),
			parseFloat(circleEl.Attributes["cy"]),
		})
	}

	for _, lineEl := range rootEl.FindAll("line") {
		fixture.Segments = append(fixture.Segments, Segment{
			Start: Point{parseFloat(lineEl.Attributes["x1"]), parseFloat(lineEl.Attributes["y1"])},
			End:   Point{parseFloat(lineEl.Attributes["x2"]), parseFloat(lineEl.Attributes["y2"])},
		})
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	if len(polygons) == 1 {
		fixture.Hull = parsePolygon(polygons[0].Attributes["points"])
	}
	return fixture
}

func parsePolygon(pointString string) Polygon {
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		points = append(points, Point{parseFloat(pointStrings[0]), parseFloat(pointStrings[1])})
	}
	result := Polygon{Points: points}

	// Ensure that the polygon is CCW
	if !result.IsCCW() {
		result = result.Reverse()
	}

	// Rotate so that the leftmost point comes first
	leftmost := 0
	for i, p := range result.Points {
		if p.LeftOf(result.Points[leftmost]) {
			leftmost = i
		}
	}
	rotated := make([]Point, len(result.Points))
	for i := range result.Points {
		rotated[i] = result.Points[CircularIndex(leftmost+i, len(result.Points))]
	}
	return Polygon{Points: rotated}
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid number %q: %v", s, err)
	}
	return v
}
