package intersect

import "github.com/planarlib/planar/geom"

// Census tallies pairwise segment relations over a set.
type Census struct {
	// Intersecting counts pairs sharing at least one point off the
	// collinear case (proper crossings and endpoint touches).
	Intersecting int

	// CollinearOverlap counts pairs on a common supporting line whose
	// extents overlap.
	CollinearOverlap int
}

// Count classifies every unordered pair of segments and returns the
// tally. Order of the input does not affect the result.
func Count(segs []geom.Segment) Census {
	var c Census
	for i, s := range segs {
		for _, t := range segs[i+1:] {
			switch s.Relate(t) {
			case geom.Intersecting:
				c.Intersecting++
			case geom.CollinearOverlap:
				c.CollinearOverlap++
			}
		}
	}

	return c
}
