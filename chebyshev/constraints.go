package chebyshev

import (
	"gonum.org/v1/gonum/mat"

	"github.com/planarlib/planar/geom"
)

// Problem is the general-form LP instance handed to the solver, over
// the variable vector x = [cx, cy, r, s₁, …, sₙ]:
//
//	minimize    Objectiveᵀ · x
//	subject to  Ineq · x ≤ IneqRHS
//	            Eq   · x = EqRHS
//
// with every variable unconstrained in sign.
type Problem struct {
	// Objective has length n+3; only the r entry is set (to −1), so
	// minimizing the objective maximizes the radius.
	Objective []float64

	// Eq is n×(n+3): row i encodes Nᵢ·c − sᵢ = Nᵢ·Pᵢ, defining sᵢ as the
	// signed distance from the center to edge i's supporting line.
	Eq    *mat.Dense
	EqRHS []float64

	// Ineq is n×(n+3): row i encodes r − sᵢ ≤ 0, keeping the radius
	// below every edge distance.
	Ineq    *mat.Dense
	IneqRHS []float64
}

// NumVars returns the LP variable count, always n+3 for n edges.
func (p Problem) NumVars() int { return len(p.Objective) }

// BuildProblem assembles the LP from the polygon vertices and their
// index-aligned inward unit normals. Both slices must have the same
// length n ≥ 3; BuildProblem performs no validation of its own — that
// is Inscribe's job.
func BuildProblem(poly geom.Polygon, normals []geom.Point) Problem {
	n := len(poly)
	nVar := n + 3

	eq := mat.NewDense(n, nVar, nil)
	eqRHS := make([]float64, n)
	ineq := mat.NewDense(n, nVar, nil)
	ineqRHS := make([]float64, n)
	for i := 0; i < n; i++ {
		// Equality row i: Nᵢx·cx + Nᵢy·cy − sᵢ = Nᵢ·Pᵢ.
		eq.Set(i, 0, normals[i].X)
		eq.Set(i, 1, normals[i].Y)
		eq.Set(i, 3+i, -1)
		eqRHS[i] = normals[i].Dot(poly[i])

		// Inequality row i: r − sᵢ ≤ 0.
		ineq.Set(i, 2, 1)
		ineq.Set(i, 3+i, -1)
		ineqRHS[i] = 0
	}

	objective := make([]float64, nVar)
	objective[2] = -1

	return Problem{
		Objective: objective,
		Eq:        eq,
		EqRHS:     eqRHS,
		Ineq:      ineq,
		IneqRHS:   ineqRHS,
	}
}
