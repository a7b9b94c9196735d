package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the drawing so that points on the bounding box stay visible
const drawPadding = 40

const pointRadius = 4

// Everything that can be drawn for a query: the input, and whatever came out.
// Marks are result points, like intersections or a closest pair, and are
// highlighted.
type Scene struct {
	Points   []Point
	Segments []Segment
	Hull     []Point
	Marks    []Point
}

func (s *Scene) bounds() (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	grow := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range s.Points {
		grow(p)
	}
	for _, segment := range s.Segments {
		grow(segment.Start)
		grow(segment.End)
	}
	for _, p := range s.Hull {
		grow(p)
	}
	for _, p := range s.Marks {
		grow(p)
	}
	return
}

// Draw the scene onto a new context, scaled so that the larger side of the
// bounding box is size pixels.
func (s *Scene) Draw(size float64) (*gg.Context, error) {
	minX, minY, maxX, maxY := s.bounds()
	if math.IsInf(minX, 1) {
		return nil, errors.New("nothing to draw")
	}
	extent := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if extent > 0 {
		scale = size / extent
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Sizes below are in pixels, so undo the scale
	pixel := 1 / scale

	if len(s.Hull) > 0 {
		c.MoveTo(s.Hull[0].X, s.Hull[0].Y)
		for _, p := range s.Hull[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.Fill()

		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2 * pixel)
		for _, edge := range (Polygon{Points: s.Hull}).Segments() {
			c.DrawLine(edge.Start.X, edge.Start.Y, edge.End.X, edge.End.Y)
			c.Stroke()
		}
	}

	c.SetRGB(1, 1, 1)
	c.SetLineWidth(2 * pixel)
	for _, segment := range s.Segments {
		c.DrawLine(segment.Start.X, segment.Start.Y, segment.End.X, segment.End.Y)
		c.Stroke()
	}

	c.SetRGB(0.8, 0.8, 0.8)
	for _, p := range s.Points {
		c.DrawCircle(p.X, p.Y, pointRadius*pixel)
		c.Fill()
	}

	c.SetRGB(1, 0.2, 0.2)
	for _, p := range s.Marks {
		c.DrawCircle(p.X, p.Y, 1.5*pointRadius*pixel)
		c.Fill()
	}
	return c, nil
}

// Draw the scene and save it as a PNG.
func (s *Scene) SavePNG(path string, size float64) error {
	c, err := s.Draw(size)
	if err != nil {
		return err
	}
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Print a saved PNG to the terminal (iTerm only).
func CatPNG(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "printing %s", path)
}
