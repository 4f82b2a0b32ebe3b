// Package geom provides the planar primitives the rest of the module is
// built on: points, line segments, and simple polygons.
//
// What:
//
//   - Point — a plain (x, y) value with vector arithmetic (Add, Sub,
//     Scale, Dot, Cross, Norm) and the CCW orientation determinant.
//   - Segment — an ordered pair of distinct points with length,
//     midpoint, an on-segment test, and a four-way intersection
//     Relation (Intersecting, NonIntersecting, CollinearOverlap,
//     CollinearDisjoint).
//   - Polygon — an ordered vertex sequence describing a closed boundary
//     by implicit consecutive edges, with areas, perimeter, centroid,
//     winding Orientation, convexity and containment predicates.
//
// Conventions:
//
//   - A polygon is implicitly closed: the edge from the last vertex back
//     to the first always exists. If the caller repeats the first vertex
//     as the last, Open (and NewPolygon) strips the duplicate so edge
//     and vertex counts agree.
//   - SignedArea is positive for counter-clockwise winding; Orientation
//     is derived from its sign.
//   - ContainsPoint uses the crossing-number ray cast; points exactly on
//     the boundary are not guaranteed a consistent answer, matching the
//     usual ray-cast caveat.
//
// Errors:
//
//   - ErrTooFewPoints: a polygon needs at least 3 distinct vertices.
//   - ErrZeroLengthSegment: a segment's endpoints coincide.
//
// Complexity: all predicates are O(1) per pair except the polygon
// operations, which are O(n) in the vertex count.
package geom
