package geom

import "math"

// Relation classifies how two segments relate to each other.
//
//   - Intersecting      — the segments share at least one point and are
//     not collinear (proper crossing or an endpoint touch).
//   - NonIntersecting   — the segments share no point.
//   - CollinearOverlap  — the segments lie on one line and overlap.
//   - CollinearDisjoint — the segments lie on one line but do not touch.
type Relation int

const (
	// NonIntersecting: no shared point.
	NonIntersecting Relation = iota

	// Intersecting: a proper crossing or endpoint touch off the collinear case.
	Intersecting

	// CollinearOverlap: same supporting line, overlapping extents.
	CollinearOverlap

	// CollinearDisjoint: same supporting line, disjoint extents.
	CollinearDisjoint
)

// String renders the relation for diagnostics.
func (r Relation) String() string {
	switch r {
	case Intersecting:
		return "Intersecting"
	case CollinearOverlap:
		return "CollinearOverlap"
	case CollinearDisjoint:
		return "CollinearDisjoint"
	default:
		return "NonIntersecting"
	}
}

// Segment is the ordered pair (Start, End) of distinct points.
type Segment struct {
	Start, End Point
}

// NewSegment builds a segment, rejecting coincident endpoints with
// ErrZeroLengthSegment (a zero-length segment has no direction).
func NewSegment(start, end Point) (Segment, error) {
	if start == end {
		return Segment{}, ErrZeroLengthSegment
	}

	return Segment{Start: start, End: end}, nil
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 { return s.Start.DistanceTo(s.End) }

// Midpoint returns the point halfway between the endpoints.
func (s Segment) Midpoint() Point {
	return Point{(s.Start.X + s.End.X) / 2, (s.Start.Y + s.End.Y) / 2}
}

// Direction returns End − Start.
func (s Segment) Direction() Point { return s.End.Sub(s.Start) }

// spansCollinear reports whether the point p, already known to lie on
// the supporting line of s, falls within s's extent. The comparison is
// done on the dominant axis of s so near-vertical and near-horizontal
// segments are both handled without dividing.
func (s Segment) spansCollinear(p Point) bool {
	d := s.Direction()
	if math.Abs(d.X) >= math.Abs(d.Y) {
		return p.X >= math.Min(s.Start.X, s.End.X) && p.X <= math.Max(s.Start.X, s.End.X)
	}

	return p.Y >= math.Min(s.Start.Y, s.End.Y) && p.Y <= math.Max(s.Start.Y, s.End.Y)
}

// Intersection returns the single point where s and t meet, if any.
// Parallel and collinear pairs report no point even when they overlap
// (there is no single point to return); Relate classifies those.
func (s Segment) Intersection(t Segment) (Point, bool) {
	d1, d2 := s.Direction(), t.Direction()
	denom := d1.Cross(d2)
	if denom == 0 {
		return Point{}, false
	}

	// Solve s.Start + u·d1 = t.Start + v·d2 and keep the point only
	// when it falls within both extents.
	w := t.Start.Sub(s.Start)
	u := w.Cross(d2) / denom
	v := w.Cross(d1) / denom
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return Point{}, false
	}

	return s.Start.Add(d1.Scale(u)), true
}

// Relate classifies the relation between s and t.
//
// Collinearity is detected first: when all four endpoints line up on a
// single supporting line, the answer is CollinearOverlap or
// CollinearDisjoint depending on whether the extents touch. Otherwise
// the straddle test on orientation determinants decides between
// Intersecting and NonIntersecting.
func (s Segment) Relate(t Segment) Relation {
	p1, p2, q1, q2 := s.Start, s.End, t.Start, t.End

	sCollinearWithT := CCW(p1, p2, q1) == 0 && CCW(p1, p2, q2) == 0 && p1 != p2
	tCollinearWithS := CCW(q1, q2, p1) == 0 && CCW(q1, q2, p2) == 0 && q1 != q2
	if sCollinearWithT || tCollinearWithS {
		if s.spansCollinear(q1) || s.spansCollinear(q2) ||
			t.spansCollinear(p1) || t.spansCollinear(p2) {
			return CollinearOverlap
		}

		return CollinearDisjoint
	}

	// Each segment must straddle the other's supporting line.
	if CCW(p1, p2, q1)*CCW(p1, p2, q2) <= 0 && CCW(q1, q2, p1)*CCW(q1, q2, p2) <= 0 {
		return Intersecting
	}

	return NonIntersecting
}
