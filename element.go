package sample

import "fmt"

// ElementKind describes the type of a sample sequence element.
type ElementKind uint8

const (
	// A sample point.
	PointKind ElementKind = iota + 1
	// A discontinuity between the neighboring sample points.
	BreakKind
)

func (kind ElementKind) String() string {
	switch kind {
	case PointKind:
		return "Point"
	case BreakKind:
		return "Break"
	default:
		return fmt.Sprintf("ElementKind(%d)", kind)
	}
}

// Element is one entry of a raw sample sequence: either a sample point or a
// break marker. The Point field is only meaningful for [PointKind].
type Element struct {
	Kind  ElementKind
	Point Point
}

// El returns a point element.
func El(pt Point) Element {
	return Element{Kind: PointKind, Point: pt}
}

// Break returns a break marker.
func Break() Element {
	return Element{Kind: BreakKind}
}

func (el Element) String() string {
	if el.Kind == BreakKind {
		return "Break"
	}
	return el.Point.String()
}

// emitter yields elements while enforcing the sequence invariants: a sequence
// never starts with a break marker, never ends with one, and never contains
// two in a row. Break markers are held back until the next point arrives.
// It also counts emitted points and stops the producer at the ceiling.
type emitter struct {
	yield        func(Element) bool
	pendingBreak bool
	started      bool
	points       int
	limit        int
}

// point emits pt, first flushing a pending break marker. It reports whether
// the producer may continue.
func (em *emitter) point(pt Point) bool {
	if em.limit > 0 && em.points >= em.limit {
		return false
	}
	if em.pendingBreak && em.started {
		if !em.yield(Break()) {
			return false
		}
	}
	em.pendingBreak = false
	em.started = true
	em.points++
	return em.yield(El(pt))
}

// brk records a discontinuity before the next point.
func (em *emitter) brk() {
	em.pendingBreak = true
}

// tracked holds the most recent valid sample of a scan. Invalid evaluations
// clear it; whether the tracker is set is what separates extending the
// current polyline from starting a fresh one after a break marker.
type tracked[T any] struct {
	v  T
	ok bool
}

func (tr *tracked[T]) set(v T) {
	tr.v = v
	tr.ok = true
}

func (tr *tracked[T]) clear() {
	*tr = tracked[T]{}
}
