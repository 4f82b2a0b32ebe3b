package chebyshev

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/planarlib/planar/geom"
)

// Inscribe computes the largest circle inscribed in the simple polygon
// poly (its Chebyshev center and radius). The polygon may be supplied
// with or without the first vertex repeated as the last; either form
// yields the same result, as does either winding order.
//
// Returns:
//
//   - Circle: the center point and non-negative radius.
//   - err:    one of the package sentinels (wrapped with context) when
//     the input is degenerate or the solver fails; see doc.go.
//
// Preconditions and validation (in order):
//  1. After closing-point removal, poly must keep ≥3 distinct vertices
//     (ErrDegeneratePolygon).
//  2. No edge may have zero length (ErrDegenerateEdge).
//
// The half-plane formulation is exact for convex polygons; with reflex
// vertices the circle may cross the boundary near them (see doc.go).
// The solver call blocks with no timeout of its own — callers needing
// bounded latency must impose one around Inscribe.
//
// Complexity: O(n) assembly plus one simplex solve on n+3 variables and
// 2n constraint rows.
func Inscribe(poly geom.Polygon, opts ...Option) (Circle, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Strip an explicit closing point so edge and normal counts are
	//    not off by one (and the final edge does not degenerate).
	pg := poly.Open()

	// 3) Reject degenerate vertex sets before touching any edge.
	if n := countDistinct(pg); n < 3 {
		return Circle{}, fmt.Errorf("%w: need at least 3 distinct vertices, got %d", ErrDegeneratePolygon, n)
	}

	// 4) Extract inward unit normals, one per edge.
	normals, err := InwardNormals(pg)
	if err != nil {
		return Circle{}, err
	}

	// 5) Assemble the LP and hand it to the external solver.
	x, err := solve(BuildProblem(pg, normals), cfg.Tol)
	if err != nil {
		return Circle{}, err
	}

	// 6) Interpret the solution vector: center from the first two
	//    entries, radius from the third, normalized to a non-negative
	//    magnitude.
	return Circle{
		Center: geom.Point{X: x[0], Y: x[1]},
		Radius: math.Abs(x[2]),
	}, nil
}

// solve converts the general-form problem to standard form, runs the
// simplex method, and maps solver failures onto the package taxonomy.
func solve(p Problem, tol float64) ([]float64, error) {
	// lp.Convert splits each free variable v into v⁺ − v⁻ and appends
	// one slack per inequality row, producing the standard form
	// minimize cᵀx s.t. Ax = b, x ≥ 0.
	c, a, b := lp.Convert(p.Objective, p.Ineq, p.IneqRHS, p.Eq, p.EqRHS)

	_, xStd, err := lp.Simplex(c, a, b, tol, nil)
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return nil, fmt.Errorf("%w: %v", ErrInfeasibleGeometry, err)
		case errors.Is(err, lp.ErrUnbounded):
			return nil, fmt.Errorf("%w: LP unbounded: %v", ErrDegeneratePolygon, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrNumerical, err)
		}
	}

	// Recover the original free variables from their split halves.
	nVar := p.NumVars()
	x := make([]float64, nVar)
	for i := 0; i < nVar; i++ {
		x[i] = xStd[i] - xStd[nVar+i]
	}

	return x, nil
}

// countDistinct returns the number of distinct vertices in pg.
func countDistinct(pg geom.Polygon) int {
	seen := make(map[geom.Point]struct{}, len(pg))
	for _, p := range pg {
		seen[p] = struct{}{}
	}

	return len(seen)
}
