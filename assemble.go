package sample

import "iter"

// Polyline is a maximal run of consecutive valid sample points. Renderers
// draw each polyline as one connected line strip and must not connect across
// polylines.
//
// A polyline of length 1 is degenerate; whether to render it as an isolated
// point or drop it is the renderer's policy decision.
type Polyline []Point

// Assemble normalizes a raw sample sequence into the minimal set of
// contiguous polylines: adjacent break markers collapse into one, and the
// sequence is split into maximal runs of consecutive points.
//
// Assemble accepts any element sequence, including ones that violate the
// usual invariants; leading and trailing break markers are dropped.
func Assemble(seq iter.Seq[Element]) []Polyline {
	var out []Polyline
	var run Polyline
	for el := range seq {
		switch el.Kind {
		case PointKind:
			run = append(run, el.Point)
		case BreakKind:
			if len(run) > 0 {
				out = append(out, run)
				run = nil
			}
		}
	}
	if len(run) > 0 {
		out = append(out, run)
	}
	return out
}
