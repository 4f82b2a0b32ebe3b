package geom

import "errors"

var (
	// ErrTooFewPoints indicates a polygon was built from fewer than
	// 3 distinct vertices, which leaves its interior undefined.
	ErrTooFewPoints = errors.New("geom: polygon needs at least 3 distinct vertices")

	// ErrZeroLengthSegment indicates both segment endpoints coincide.
	ErrZeroLengthSegment = errors.New("geom: segment endpoints must be distinct")
)
