// Package chebyshev computes the largest circle inscribed in a simple
// polygon — the Chebyshev center problem — by reformulating it as a
// linear program instead of searching geometrically.
//
// Formulation:
//
//	Let the polygon have n vertices P₀..Pₙ₋₁ and edges Pᵢ→Pᵢ₊₁ (mod n),
//	and let Nᵢ be the inward unit normal of edge i. Over the variable
//	vector x = [cx, cy, r, s₁, …, sₙ] (n+3 entries):
//
//	  minimize    −r
//	  subject to  Nᵢ·(c − Pᵢ) − sᵢ = 0     (sᵢ is the signed distance
//	                                        from c to edge i's line)
//	              r − sᵢ ≤ 0               (radius below every distance)
//
//	The optimum places c at the Chebyshev center and r at the largest
//	inscribed radius.
//
// Pipeline (stateless, one pass per call):
//
//  1. Strip an explicit closing point and validate ≥3 distinct vertices.
//  2. Extract inward unit normals (direction rotated −90°, flipped to
//     the interior side using the polygon's signed area, so the result
//     is identical for either winding order).
//  3. Assemble the constraint matrices (gonum/mat).
//  4. Solve with the gonum simplex LP solver and read the circle out of
//     the solution vector; the radius is reported as an absolute value.
//
// Caveat: the LP intersects the half-planes obtained by extending every
// edge infinitely. For convex polygons that intersection is exactly the
// interior and the answer is exact; for polygons with reflex vertices it
// can be a strict superset, so the computed circle may cross the
// boundary near a reflex vertex. No self-intersection detection is
// performed.
//
// Errors (sentinel):
//
//   - ErrDegenerateEdge     — a polygon edge has zero length.
//   - ErrDegeneratePolygon  — fewer than 3 distinct vertices, or the LP
//     reports an unbounded objective.
//   - ErrInfeasibleGeometry — the LP has no feasible solution (typically
//     a self-intersecting or zero-area input).
//   - ErrNumerical          — the solver failed for numerical reasons
//     (ill-conditioned constraints from near-duplicate points).
//
// Complexity: constraint assembly is O(n); the solve is delegated to
// the simplex method, which is fast in practice for these small, sparse
// systems. Calls share no state and are safe to run concurrently.
package chebyshev
