package intersect

import (
	"fmt"
	"math"
	"sort"

	"github.com/planarlib/planar/geom"
)

// orderNudge shifts the status ordering just past a crossing event so
// the two segments that meet there swap ranks instead of colliding on
// one key.
const orderNudge = 1e-8

// coordinatePrecision is the decimal precision crossing points are
// rounded to before they are queued, so the same crossing discovered
// from two neighbor checks dedupes to one event.
const coordinatePrecision = 9

// eventKind tags the three things that can happen as the sweep line
// moves left to right.
type eventKind int

const (
	// leftEndpoint: a segment enters the status structure.
	leftEndpoint eventKind = iota

	// rightEndpoint: a segment leaves the status structure.
	rightEndpoint

	// crossing: two active segments meet and swap ranks.
	crossing
)

// event is one entry of the sweep's x-ordered event queue.
type event struct {
	at   geom.Point
	kind eventKind
	seg  geom.Segment

	// other is the second segment of a crossing event; zero otherwise.
	other geom.Segment
}

// sweep holds the two structures of the plane sweep: the event queue,
// ordered by (x, y) of the event point, and the active set, ordered
// bottom-to-top by each segment's y-coordinate at the sweep position.
type sweep struct {
	queue  []event
	active []geom.Segment
	found  []geom.Point
	seen   map[geom.Point]struct{}
}

// Points enumerates the crossing points among segs with a left-to-right
// plane sweep: only neighboring segments of the status structure are
// tested against each other, so sparse sets avoid the all-pairs cost
// that Count pays. Points are returned in sweep order (ascending x,
// ties by ascending y) with coordinates rounded to nine decimals.
//
// The sweep assumes general position: no vertical segments
// (ErrVerticalSegment), and no shared endpoints or three segments
// through one point (those collapse events and may drop crossings).
// Collinear overlapping pairs have no single crossing point and are
// never reported; Count tallies them.
//
// Complexity: O((n+k) n log n) for n segments and k crossings, from the
// re-keying of the status structure at every event.
func Points(segs []geom.Segment) ([]geom.Point, error) {
	sw := &sweep{seen: make(map[geom.Point]struct{})}

	// 1) Orient every segment left-to-right and queue its endpoints.
	for i, s := range segs {
		if s.Start.X == s.End.X {
			return nil, fmt.Errorf("%w: segment %d (%v, %v)", ErrVerticalSegment, i, s.Start, s.End)
		}
		if s.Start.X > s.End.X {
			s = geom.Segment{Start: s.End, End: s.Start}
		}
		sw.push(event{at: s.Start, kind: leftEndpoint, seg: s})
		sw.push(event{at: s.End, kind: rightEndpoint, seg: s})
	}

	// 2) Drain the queue; crossing events discovered on the way are
	//    pushed back into it ahead of the sweep position.
	for len(sw.queue) > 0 {
		sw.step()
	}

	return sw.found, nil
}

// step pops and handles the next event.
func (sw *sweep) step() {
	e := sw.queue[0]
	sw.queue = sw.queue[1:]
	x := e.at.X

	switch e.kind {
	case leftEndpoint:
		sw.active = append(sw.active, e.seg)
		sw.reorder(x)
		i := sw.indexOf(e.seg)
		if i+1 < len(sw.active) {
			sw.schedule(e.seg, sw.active[i+1], x)
		}
		if i > 0 {
			sw.schedule(e.seg, sw.active[i-1], x)
		}
	case rightEndpoint:
		sw.reorder(x)
		i := sw.indexOf(e.seg)
		if i < 0 {
			return
		}
		// The leaving segment's neighbors become adjacent.
		if i > 0 && i+1 < len(sw.active) {
			sw.schedule(sw.active[i-1], sw.active[i+1], x)
		}
		sw.active = append(sw.active[:i], sw.active[i+1:]...)
	case crossing:
		sw.found = append(sw.found, e.at)

		// Re-key just past the event so the two segments swap ranks,
		// then test each against its new outer neighbor.
		sw.reorder(x + orderNudge)
		lo, hi := sw.indexOf(e.seg), sw.indexOf(e.other)
		if lo < 0 || hi < 0 {
			return
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo > 0 {
			sw.schedule(sw.active[lo-1], sw.active[lo], x)
		}
		if hi+1 < len(sw.active) {
			sw.schedule(sw.active[hi], sw.active[hi+1], x)
		}
	}
}

// schedule queues a crossing event for a and b when they meet strictly
// ahead of the sweep position x and the point was not queued before.
func (sw *sweep) schedule(a, b geom.Segment, x float64) {
	p, ok := a.Intersection(b)
	if !ok || p.X <= x {
		return
	}

	key := roundPoint(p, coordinatePrecision)
	if _, dup := sw.seen[key]; dup {
		return
	}
	sw.seen[key] = struct{}{}
	sw.push(event{at: key, kind: crossing, seg: a, other: b})
}

// push inserts e into the queue, keeping it sorted by (x, y).
func (sw *sweep) push(e event) {
	i := sort.Search(len(sw.queue), func(i int) bool {
		q := sw.queue[i].at
		return q.X > e.at.X || (q.X == e.at.X && q.Y >= e.at.Y)
	})
	sw.queue = append(sw.queue, event{})
	copy(sw.queue[i+1:], sw.queue[i:])
	sw.queue[i] = e
}

// reorder re-keys the whole status structure at sweep position x.
func (sw *sweep) reorder(x float64) {
	sort.Slice(sw.active, func(i, j int) bool {
		return yAt(sw.active[i], x) < yAt(sw.active[j], x)
	})
}

// indexOf locates s in the status structure, or returns −1.
func (sw *sweep) indexOf(s geom.Segment) int {
	for i, t := range sw.active {
		if t == s {
			return i
		}
	}

	return -1
}

// yAt evaluates the segment's supporting line at x. Callers guarantee
// the segment is not vertical.
func yAt(s geom.Segment, x float64) float64 {
	return s.Start.Y + (x-s.Start.X)*(s.End.Y-s.Start.Y)/(s.End.X-s.Start.X)
}

// roundPoint rounds both coordinates to the given decimal precision.
func roundPoint(p geom.Point, decimals int) geom.Point {
	scale := math.Pow(10, float64(decimals))

	return geom.Point{
		X: math.Round(p.X*scale) / scale,
		Y: math.Round(p.Y*scale) / scale,
	}
}
