package plane

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOrb(t *testing.T) {
	assert.Equal(t, Point{X: 1, Y: 2}, FromOrbPoint(orb.Point{1, 2}))
	assert.Equal(t, []Point{{X: 1, Y: 2}, {X: 3, Y: 4}}, FromOrbMultiPoint(orb.MultiPoint{{1, 2}, {3, 4}}))

	segments := FromOrbLineString(orb.LineString{{0, 0}, {4, 4}, {4, 0}, {0, 4}})
	assert.Equal(t, []Segment{
		{Start: Point{X: 0, Y: 0}, End: Point{X: 4, Y: 4}},
		{Start: Point{X: 4, Y: 4}, End: Point{X: 4, Y: 0}},
		{Start: Point{X: 4, Y: 0}, End: Point{X: 0, Y: 4}},
	}, segments)
	assert.Equal(t, []Point{{X: 2, Y: 2}}, SegmentIntersections(segments...))

	assert.Nil(t, FromOrbLineString(orb.LineString{{0, 0}}))
}

func TestHullToOrbRing(t *testing.T) {
	points := FromOrbMultiPoint(orb.MultiPoint{{0, 0}, {4, 0}, {1, 1}, {4, 4}, {0, 4}, {3, 2}})
	hull, err := ConvexHull(points...)
	require.NoError(t, err)

	ring := ToOrbRing(hull)
	require.Len(t, ring, 5)
	assert.True(t, ring.Closed())
	assert.Equal(t, orb.CCW, ring.Orientation())
	assert.Equal(t, 16.0, planar.Area(ring))
	assert.Equal(t, 16.0, Polygon{Points: hull}.SignedArea())

	assert.Nil(t, ToOrbRing(nil))
}

func TestClosestPairMatchesOrbDistance(t *testing.T) {
	mp := orb.MultiPoint{{0, 0}, {7, 3}, {2, 9}, {6, 5}, {-4, 1}}
	pair, err := ClosestPair(FromOrbMultiPoint(mp)...)
	require.NoError(t, err)
	assert.InDelta(t, planar.Distance(ToOrbPoint(pair.A), ToOrbPoint(pair.B)), pair.Distance, 1e-12)
}
