package intersect

import "errors"

// ErrVerticalSegment indicates a segment whose endpoints share an
// x-coordinate (including zero-length segments). The plane sweep orders
// its status structure by the y-coordinate at the sweep position, which
// a vertical segment does not define.
var ErrVerticalSegment = errors.New("intersect: vertical segment not supported by the sweep")
