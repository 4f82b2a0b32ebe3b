package chebyshev

import (
	"errors"

	"github.com/planarlib/planar/geom"
)

// Sentinel errors returned by Inscribe and its stages.
var (
	// ErrDegenerateEdge indicates a polygon edge of zero length, whose
	// normal is undefined.
	ErrDegenerateEdge = errors.New("chebyshev: polygon edge has zero length")

	// ErrDegeneratePolygon indicates fewer than 3 distinct vertices, or
	// an LP that came back unbounded (impossible for a well-formed
	// closed polygon).
	ErrDegeneratePolygon = errors.New("chebyshev: degenerate polygon")

	// ErrInfeasibleGeometry indicates the LP admits no feasible point;
	// any valid simple polygon is feasible, so this typically means a
	// self-intersecting or zero-area input.
	ErrInfeasibleGeometry = errors.New("chebyshev: no feasible inscribed circle")

	// ErrNumerical indicates the solver failed for numerical reasons,
	// e.g. ill-conditioned constraints from near-duplicate or
	// near-collinear vertices. Not retried: no fallback is defined.
	ErrNumerical = errors.New("chebyshev: numerical failure in LP solve")

	// ErrBadTolerance indicates WithTolerance was given a non-positive
	// value.
	ErrBadTolerance = errors.New("chebyshev: tolerance must be positive")
)

// DefaultTol is the convergence tolerance handed to the simplex solver
// when no option overrides it.
const DefaultTol = 1e-10

// Circle is the result of Inscribe: the largest inscribed circle's
// center and its non-negative radius.
type Circle struct {
	Center geom.Point
	Radius float64
}

// Options configures Inscribe.
//
// Tol — convergence/feasibility tolerance for the simplex solver.
// Must be > 0. Default is DefaultTol.
type Options struct {
	Tol float64
}

// Option is a functional option for configuring Inscribe.
type Option func(*Options)

// WithTolerance overrides the solver tolerance.
// Must pass a positive value; zero or negative panic with ErrBadTolerance.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic(ErrBadTolerance.Error())
	}

	return func(o *Options) { o.Tol = tol }
}

// DefaultOptions returns the Options used when no functional options
// are supplied: Tol = DefaultTol.
func DefaultOptions() Options {
	return Options{Tol: DefaultTol}
}
