package geom

import "math"

// Point is a location (or free vector) in the plane. It has no identity
// beyond its coordinate values.
type Point struct {
	X, Y float64
}

// Add returns the componentwise sum p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the componentwise difference p − q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{k * p.X, k * p.Y} }

// Dot returns the scalar product p·q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z-component of the cross product p×q.
// It is positive when q lies counter-clockwise of p.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Norm returns the Euclidean length of p viewed as a vector.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 { return q.Sub(p).Norm() }

// CCW is the orientation determinant of the ordered triple (p, q, r):
// zero when r lies on the line through p and q, positive when the triple
// makes a counter-clockwise turn, negative when it makes a clockwise one.
func CCW(p, q, r Point) float64 {
	return (p.X*q.Y - p.Y*q.X) + (q.X*r.Y - q.Y*r.X) + (p.Y*r.X - p.X*r.Y)
}
