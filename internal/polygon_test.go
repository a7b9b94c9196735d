package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygonSignedArea(t *testing.T) {
	square := Polygon{Points: []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}
	assert.Equal(t, 16.0, square.SignedArea())
	assert.True(t, square.IsCCW())

	reversed := square.Reverse()
	assert.Equal(t, -16.0, reversed.SignedArea())
	assert.False(t, reversed.IsCCW())
	assert.Equal(t, []Point{{0, 4}, {4, 4}, {4, 0}, {0, 0}}, reversed.Points)
}

func TestPolygonContainsPoint(t *testing.T) {
	square := Polygon{Points: []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}
	assert.True(t, square.ContainsPoint(Point{2, 2}))
	assert.True(t, square.ContainsPoint(Point{4, 2}), "boundary counts")
	assert.True(t, square.ContainsPoint(Point{0, 0}), "vertex counts")
	assert.False(t, square.ContainsPoint(Point{5, 2}))
	assert.False(t, square.ContainsPoint(Point{-0.5, -0.5}))
}

func TestPolygonSegments(t *testing.T) {
	triangle := Polygon{Points: []Point{{0, 0}, {3, 1}, {1, 5}}}
	assert.Equal(t, []Segment{
		seg(0, 0, 3, 1),
		seg(3, 1, 1, 5),
		seg(1, 5, 0, 0),
	}, triangle.Segments())
}
