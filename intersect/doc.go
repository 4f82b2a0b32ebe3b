// Package intersect counts and locates intersections over sets of line
// segments.
//
// What:
//
//   - Count takes a segment set and tallies, over all unordered pairs,
//     how many pairs properly intersect and how many are collinear and
//     overlapping. Collinear-but-disjoint and plainly disjoint pairs
//     are not counted.
//
//   - Points enumerates the actual crossing points with a left-to-right
//     plane sweep: segments enter the status structure at their left
//     endpoint, leave at their right one, and only neighbors in the
//     structure are tested against each other. It assumes general
//     position (no vertical segments, no shared endpoints, no three
//     segments through one point) and returns ErrVerticalSegment when
//     that precondition is checkable.
//
// The classification per pair is geom.Segment.Relate, the crossing
// point per pair geom.Segment.Intersection; this package adds the
// all-pairs tally and the sweep on top.
//
// Complexity: Count is O(n²) pairs with O(1) extra memory. Points is
// O((n+k) n log n) for k crossings and wins on sparse sets where k is
// far below the pair count.
package intersect
