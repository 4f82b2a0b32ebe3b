package intersect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planarlib/planar/geom"
	"github.com/planarlib/planar/intersect"
)

// seg is a test helper building a segment from raw coordinates.
func seg(x1, y1, x2, y2 float64) geom.Segment {
	return geom.Segment{Start: geom.Point{X: x1, Y: y1}, End: geom.Point{X: x2, Y: y2}}
}

// TestCount_Empty verifies the zero cases: no segments, one segment.
func TestCount_Empty(t *testing.T) {
	assert.Equal(t, intersect.Census{}, intersect.Count(nil))
	assert.Equal(t, intersect.Census{}, intersect.Count([]geom.Segment{seg(0, 0, 1, 1)}))
}

// TestCount_MixedSet tallies a hand-built set with one crossing, one
// collinear overlap, and pairs that must not be counted.
func TestCount_MixedSet(t *testing.T) {
	segs := []geom.Segment{
		seg(0, 0, 2, 2),   // crosses the next one
		seg(0, 2, 2, 0),   // crosses the previous one
		seg(5, 0, 7, 0),   // overlaps the next one
		seg(6, 0, 9, 0),   // overlaps the previous one
		seg(11, 0, 12, 0), // collinear with the two above but disjoint
		seg(0, 5, 1, 4),   // far away from everything
	}

	c := intersect.Count(segs)
	assert.Equal(t, 1, c.Intersecting, "exactly one crossing pair")
	assert.Equal(t, 1, c.CollinearOverlap, "exactly one overlapping collinear pair")
}

// TestCount_Star counts crossings of three diameters through one point:
// every pair crosses, so C(3,2) = 3.
func TestCount_Star(t *testing.T) {
	segs := []geom.Segment{
		seg(-1, 0, 1, 0),
		seg(0, -1, 0, 1),
		seg(-1, -1, 1, 1),
	}

	c := intersect.Count(segs)
	assert.Equal(t, 3, c.Intersecting)
	assert.Zero(t, c.CollinearOverlap)
}

// TestCount_OrderIndependent shuffles the input order; the census must
// not change.
func TestCount_OrderIndependent(t *testing.T) {
	a := []geom.Segment{seg(0, 0, 2, 2), seg(0, 2, 2, 0), seg(5, 0, 7, 0), seg(6, 0, 9, 0)}
	b := []geom.Segment{a[3], a[1], a[0], a[2]}

	assert.Equal(t, intersect.Count(a), intersect.Count(b))
}
