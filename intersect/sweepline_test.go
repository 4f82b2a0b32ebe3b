package intersect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planarlib/planar/geom"
	"github.com/planarlib/planar/intersect"
)

// TestPoints_SingleCrossing sweeps the smallest interesting input: one
// X-shaped pair.
func TestPoints_SingleCrossing(t *testing.T) {
	pts, err := intersect.Points([]geom.Segment{
		seg(0, 0, 2, 2),
		seg(0, 2, 2, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 1, Y: 1}}, pts)
}

// TestPoints_Triangle sweeps three mutually crossing segments. The
// crossing of the two lower segments is discovered twice (once from
// each neighbor check) and must be reported once, in sweep order.
func TestPoints_Triangle(t *testing.T) {
	pts, err := intersect.Points([]geom.Segment{
		seg(0, 0, 6, 6),
		seg(0, 4, 6, -2),
		seg(0, 1, 6, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 1}}, pts)
}

// TestPoints_Disjoint sweeps sets with nothing to report: separated
// segments, a parallel pair, and a collinear overlap (no single point).
func TestPoints_Disjoint(t *testing.T) {
	pts, err := intersect.Points([]geom.Segment{
		seg(0, 0, 1, 1),
		seg(3, 5, 4, 6),
	})
	require.NoError(t, err)
	assert.Empty(t, pts)

	pts, err = intersect.Points([]geom.Segment{
		seg(0, 0, 4, 0),
		seg(0, 1, 4, 1),
		seg(1, 0, 5, 0),
	})
	require.NoError(t, err)
	assert.Empty(t, pts)
}

// TestPoints_InputOrientation verifies a right-to-left segment is swept
// the same as its left-to-right twin.
func TestPoints_InputOrientation(t *testing.T) {
	a, err := intersect.Points([]geom.Segment{seg(0, 0, 2, 2), seg(0, 2, 2, 0)})
	require.NoError(t, err)
	b, err := intersect.Points([]geom.Segment{seg(2, 2, 0, 0), seg(2, 0, 0, 2)})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestPoints_MatchesCensus cross-checks the sweep against the all-pairs
// census on a general-position set.
func TestPoints_MatchesCensus(t *testing.T) {
	segs := []geom.Segment{
		seg(0, 0, 6, 6),
		seg(0, 4, 6, -2),
		seg(0, 1, 6, 1),
		seg(7, 0, 9, 3),
		seg(7, 3, 9, 0),
	}

	pts, err := intersect.Points(segs)
	require.NoError(t, err)
	assert.Len(t, pts, intersect.Count(segs).Intersecting)
}

// TestPoints_RejectsVertical verifies the general-position precondition
// is enforced with the package sentinel.
func TestPoints_RejectsVertical(t *testing.T) {
	_, err := intersect.Points([]geom.Segment{seg(1, 0, 1, 5)})
	assert.ErrorIs(t, err, intersect.ErrVerticalSegment)

	_, err = intersect.Points([]geom.Segment{seg(2, 2, 2, 2)})
	assert.ErrorIs(t, err, intersect.ErrVerticalSegment, "zero-length segments are vertical too")
}
