package sample

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// points collects the sample points of a sequence, skipping break markers.
func points(seq iter.Seq[Element]) []Point {
	var out []Point
	for el := range seq {
		if el.Kind == PointKind {
			out = append(out, el.Point)
		}
	}
	return out
}

// breaks counts the break markers of a sequence.
func breaks(seq iter.Seq[Element]) int {
	n := 0
	for el := range seq {
		if el.Kind == BreakKind {
			n++
		}
	}
	return n
}
