package chebyshev

import (
	"fmt"

	"github.com/planarlib/planar/geom"
)

// InwardNormals returns one unit normal per polygon edge, index-aligned
// with the vertices: normals[i] belongs to the edge from poly[i] to
// poly[(i+1) mod n], and always points into the polygon's interior.
//
// Construction: the edge direction (dx, dy) is rotated by −90° to
// (dy, −dx) and normalized. That rotation faces the interior only for
// clockwise winding, so for counter-clockwise input (positive signed
// area) every normal is negated. The caller therefore never needs to
// care about winding order.
//
// Returns ErrDegenerateEdge if any edge has zero length, since its
// normal direction is undefined.
func InwardNormals(poly geom.Polygon) ([]geom.Point, error) {
	n := len(poly)
	normals := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		d := poly[(i+1)%n].Sub(poly[i])
		length := d.Norm()
		if length == 0 {
			return nil, fmt.Errorf("%w: edge %d (vertex %v repeated)", ErrDegenerateEdge, i, poly[i])
		}
		normals[i] = geom.Point{X: d.Y / length, Y: -d.X / length}
	}

	// Counter-clockwise winding puts the −90° rotation on the outside.
	if poly.Orientation() == geom.CounterClockwise {
		for i := range normals {
			normals[i] = normals[i].Scale(-1)
		}
	}

	return normals, nil
}
