// Package planar is a small computational-geometry toolkit for the
// Euclidean plane — from point/segment/polygon primitives to the
// largest circle inscribed in a polygon.
//
// 🧭 What is planar?
//
//	A compact, stateless library that brings together:
//		• Primitives: points, segments, polygons with areas, centroids & containment
//		• Chebyshev center: the largest inscribed circle of a polygon, via LP
//		• Intersections: pairwise segment-relation census over segment sets
//		• Regions: polygon areas with holes and point-in-region classification
//
// ✨ Why choose planar?
//
//   - Minimal API — plain value types, explicit error returns
//   - Exact where it matters — the inscribed circle is solved as a linear
//     program (gonum simplex), not approximated by grid search
//   - Stateless — every call is an independent, parallel-safe computation
//
// Under the hood, everything is organized under four subpackages:
//
//	geom/      — Point, Segment, Polygon primitives and predicates
//	chebyshev/ — largest inscribed circle (Chebyshev center) of a polygon
//	intersect/ — segment-intersection census
//	regions/   — named areas with holes, site classification
//
// Quick ASCII example:
//
//	    ┌────────┐
//	    │   ⊙    │
//	    └────────┘
//
//	the ⊙ is the Chebyshev center: chebyshev.Inscribe finds it and the
//	radius of the largest circle around it that stays inside the box.
//
// Dive into each package's doc.go for formulas, invariants and
// runnable examples.
//
//	go get github.com/planarlib/planar
package planar
