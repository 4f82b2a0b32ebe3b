package geom

import "math"

// Orientation is the winding direction of a polygon's vertex list.
type Orientation int

const (
	// Clockwise winding: negative signed area.
	Clockwise Orientation = iota

	// CounterClockwise winding: positive signed area.
	CounterClockwise
)

// String renders the orientation for diagnostics.
func (o Orientation) String() string {
	if o == CounterClockwise {
		return "CounterClockwise"
	}

	return "Clockwise"
}

// Polygon is an ordered vertex sequence describing a closed boundary by
// implicit consecutive edges; the edge from the last vertex back to the
// first closes the loop. A nil or short slice is not a valid polygon —
// use NewPolygon to construct one safely.
type Polygon []Point

// NewPolygon builds a polygon from pts, stripping an explicit closing
// point (first vertex repeated as last) if present. Fewer than 3
// remaining vertices yield ErrTooFewPoints.
func NewPolygon(pts []Point) (Polygon, error) {
	pg := Polygon(pts).Open()
	if len(pg) < 3 {
		return nil, ErrTooFewPoints
	}

	return pg, nil
}

// IsClosed reports whether the first vertex is repeated as the last.
func (pg Polygon) IsClosed() bool {
	return len(pg) > 1 && pg[0] == pg[len(pg)-1]
}

// Open returns pg without the explicit closing point, copying the
// vertices so the caller's slice stays untouched. Calling Open on an
// already-open polygon returns an identical copy (idempotent).
func (pg Polygon) Open() Polygon {
	n := len(pg)
	if pg.IsClosed() {
		n--
	}
	out := make(Polygon, n)
	copy(out, pg[:n])

	return out
}

// Reverse returns a copy of pg with the vertex order reversed,
// flipping the winding orientation.
func (pg Polygon) Reverse() Polygon {
	out := make(Polygon, len(pg))
	for i, p := range pg {
		out[len(pg)-1-i] = p
	}

	return out
}

// Edges returns the n consecutive boundary segments of pg; edge i runs
// from vertex i to vertex (i+1) mod n. The polygon must be open.
func (pg Polygon) Edges() []Segment {
	n := len(pg)
	edges := make([]Segment, n)
	for i := 0; i < n; i++ {
		edges[i] = Segment{Start: pg[i], End: pg[(i+1)%n]}
	}

	return edges
}

// SignedArea returns the shoelace area of pg: positive for
// counter-clockwise winding, negative for clockwise.
func (pg Polygon) SignedArea() float64 {
	var area float64
	n := len(pg)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pg[i].Cross(pg[j])
	}

	return area / 2
}

// Area returns the absolute enclosed area of pg.
func (pg Polygon) Area() float64 { return math.Abs(pg.SignedArea()) }

// Perimeter returns the total boundary length of pg.
func (pg Polygon) Perimeter() float64 {
	var sum float64
	n := len(pg)
	for i := 0; i < n; i++ {
		sum += pg[i].DistanceTo(pg[(i+1)%n])
	}

	return sum
}

// Centroid returns the area-weighted centroid of pg. For a polygon with
// (numerically) zero area the vertex average is returned instead, since
// the area-weighted formula divides by the signed area.
func (pg Polygon) Centroid() Point {
	var cx, cy, area float64
	n := len(pg)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		w := pg[i].Cross(pg[j])
		cx += (pg[i].X + pg[j].X) * w
		cy += (pg[i].Y + pg[j].Y) * w
		area += w
	}
	if area == 0 {
		var avg Point
		for _, p := range pg {
			avg = avg.Add(p)
		}

		return avg.Scale(1 / float64(n))
	}

	return Point{cx / (3 * area), cy / (3 * area)}
}

// Orientation returns the winding direction of pg, derived from the
// sign of the shoelace area.
func (pg Polygon) Orientation() Orientation {
	if pg.SignedArea() > 0 {
		return CounterClockwise
	}

	return Clockwise
}

// IsConvex reports whether every boundary turn of pg bends the same way
// (collinear triples are tolerated). A polygon with fewer than 4
// vertices is always convex.
func (pg Polygon) IsConvex() bool {
	n := len(pg)
	if n < 4 {
		return true
	}
	var sign float64
	for i := 0; i < n; i++ {
		turn := CCW(pg[i], pg[(i+1)%n], pg[(i+2)%n])
		if turn == 0 {
			continue
		}
		if sign == 0 {
			sign = turn
			continue
		}
		if sign*turn < 0 {
			return false
		}
	}

	return true
}

// ContainsPoint reports whether p lies inside pg, using the
// crossing-number ray cast: a ray from p to the right is tested against
// every boundary edge, and an odd crossing count means inside. Points
// exactly on the boundary get no consistency guarantee.
func (pg Polygon) ContainsPoint(p Point) bool {
	crossings := 0
	n := len(pg)
	for i := 0; i < n; i++ {
		a, b := pg[i], pg[(i+1)%n]
		if (a.Y <= p.Y && p.Y < b.Y) || (b.Y <= p.Y && p.Y < a.Y) {
			// x coordinate where the edge crosses the ray's height
			xCross := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xCross {
				crossings++
			}
		}
	}

	return crossings%2 == 1
}

// ContainsPolygon reports whether every vertex of q lies inside pg.
func (pg Polygon) ContainsPolygon(q Polygon) bool {
	for _, p := range q {
		if !pg.ContainsPoint(p) {
			return false
		}
	}

	return true
}

// Bounds returns the axis-aligned bounding box of pg as (min, max)
// corner points.
func (pg Polygon) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range pg {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}

	return min, max
}
