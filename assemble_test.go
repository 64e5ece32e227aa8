package sample

import (
	"slices"
	"testing"
)

func TestAssembleCollapsesBreaks(t *testing.T) {
	p1, p2, p3 := Pt(0, 0), Pt(1, 1), Pt(2, 4)
	in := []Element{El(p1), Break(), Break(), El(p2), El(p3)}
	want := []Polyline{{p1}, {p2, p3}}
	diff(t, want, Assemble(slices.Values(in)))
}

func TestAssembleDropsOuterBreaks(t *testing.T) {
	p1, p2 := Pt(0, 0), Pt(1, 1)
	in := []Element{Break(), El(p1), El(p2), Break()}
	want := []Polyline{{p1, p2}}
	diff(t, want, Assemble(slices.Values(in)))
}

func TestAssembleEmpty(t *testing.T) {
	if got := Assemble(slices.Values([]Element{})); len(got) != 0 {
		t.Errorf("got %d polylines, want 0", len(got))
	}
	if got := Assemble(slices.Values([]Element{Break(), Break()})); len(got) != 0 {
		t.Errorf("got %d polylines from breaks only, want 0", len(got))
	}
}

func TestAssembleSingleRun(t *testing.T) {
	pts := []Element{El(Pt(0, 0)), El(Pt(1, 2)), El(Pt(2, 3))}
	lines := Assemble(slices.Values(pts))
	if len(lines) != 1 || len(lines[0]) != 3 {
		t.Fatalf("got %v, want one polyline of three points", lines)
	}
}

func TestAssembleDegenerateRun(t *testing.T) {
	// Length-1 runs survive assembly; dropping them is the renderer's call.
	in := []Element{El(Pt(0, 0)), Break(), El(Pt(1, 1)), Break(), El(Pt(2, 2))}
	lines := Assemble(slices.Values(in))
	if len(lines) != 3 {
		t.Fatalf("got %d polylines, want 3", len(lines))
	}
	for _, line := range lines {
		if len(line) != 1 {
			t.Errorf("got run of %d points, want 1", len(line))
		}
	}
}
