package chebyshev_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planarlib/planar/chebyshev"
	"github.com/planarlib/planar/geom"
)

// TestBuildProblem_Shapes verifies the invariant sizes: n+3 variables,
// n rows in each constraint block.
func TestBuildProblem_Shapes(t *testing.T) {
	pg := geom.Polygon{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 8, Y: 3}, {X: 4, Y: 6}, {X: -1, Y: 3}}
	normals, err := chebyshev.InwardNormals(pg)
	require.NoError(t, err)

	p := chebyshev.BuildProblem(pg, normals)
	n := len(pg)

	assert.Equal(t, n+3, p.NumVars())
	assert.Len(t, p.Objective, n+3)
	assert.Len(t, p.EqRHS, n)
	assert.Len(t, p.IneqRHS, n)

	rows, cols := p.Eq.Dims()
	assert.Equal(t, n, rows)
	assert.Equal(t, n+3, cols)
	rows, cols = p.Ineq.Dims()
	assert.Equal(t, n, rows)
	assert.Equal(t, n+3, cols)
}

// TestBuildProblem_Objective verifies only the radius entry is set, and
// to −1 (minimizing −r maximizes r).
func TestBuildProblem_Objective(t *testing.T) {
	pg := geom.Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}
	normals, err := chebyshev.InwardNormals(pg)
	require.NoError(t, err)

	p := chebyshev.BuildProblem(pg, normals)
	for i, v := range p.Objective {
		if i == 2 {
			assert.Equal(t, -1.0, v, "radius coefficient")
			continue
		}
		assert.Zero(t, v, "objective entry %d", i)
	}
}

// TestBuildProblem_SquareRows pins every matrix entry for a clockwise
// 4×4 square, where the inward normals are the axis directions.
func TestBuildProblem_SquareRows(t *testing.T) {
	square := geom.Polygon{{X: 0, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 0}}
	normals, err := chebyshev.InwardNormals(square)
	require.NoError(t, err)

	p := chebyshev.BuildProblem(square, normals)
	n := len(square)

	for i := 0; i < n; i++ {
		// Equality row i: [Nᵢx, Nᵢy, 0, …, −1 at 3+i, …] = Nᵢ·Pᵢ.
		assert.Equal(t, normals[i].X, p.Eq.At(i, 0))
		assert.Equal(t, normals[i].Y, p.Eq.At(i, 1))
		assert.Zero(t, p.Eq.At(i, 2), "equality row has no radius term")
		assert.Equal(t, -1.0, p.Eq.At(i, 3+i), "slack coefficient")
		assert.Equal(t, normals[i].Dot(square[i]), p.EqRHS[i])

		// Inequality row i: [0, 0, 1, …, −1 at 3+i, …] ≤ 0.
		assert.Zero(t, p.Ineq.At(i, 0))
		assert.Zero(t, p.Ineq.At(i, 1))
		assert.Equal(t, 1.0, p.Ineq.At(i, 2), "radius coefficient")
		assert.Equal(t, -1.0, p.Ineq.At(i, 3+i), "slack coefficient")
		assert.Zero(t, p.IneqRHS[i])
	}

	// Spot-check two right-hand sides against hand-computed dot products.
	assert.Equal(t, 0.0, p.EqRHS[0], "left edge: (1,0)·(0,0)")
	assert.Equal(t, -4.0, p.EqRHS[1], "top edge: (0,−1)·(0,4)")
}
