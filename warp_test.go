package sample

import (
	"math"
	"slices"
	"testing"
)

func TestWarpShape(t *testing.T) {
	for _, tt := range []struct {
		name string
		warp Warp
	}{
		{"cubic", WarpCubic},
		{"tanh", WarpTanh},
	} {
		if got := tt.warp(1); math.Abs(got-1) > 1e-12 {
			t.Errorf("%s: warp(1) = %g, want 1", tt.name, got)
		}
		if got := tt.warp(-1); math.Abs(got+1) > 1e-12 {
			t.Errorf("%s: warp(-1) = %g, want -1", tt.name, got)
		}
		for _, u := range []float64{0.1, 0.3, 0.7} {
			if got, want := tt.warp(-u), -tt.warp(u); math.Abs(got-want) > 1e-12 {
				t.Errorf("%s: warp is not odd at %g", tt.name, u)
			}
		}
		// Flat near zero: the first tenth of the parameter range must map
		// into far less than a tenth of the output range.
		if got := math.Abs(tt.warp(0.1)); got > 0.01 {
			t.Errorf("%s: warp(0.1) = %g, not flat near the center", tt.name, got)
		}
	}
}

func TestWarpedDensity(t *testing.T) {
	// sin(π/x) oscillates arbitrarily fast near zero; the warped sampler
	// must concentrate samples there.
	f := func(x float64) float64 { return math.Sin(math.Pi / x) }
	elements := Warped(f, Interval(-0.5, 0.5), Options{Count: 200})

	var near, far int
	for _, el := range elements {
		if el.Kind != PointKind {
			continue
		}
		switch x := math.Abs(el.Point.X); {
		case x < 0.05:
			near++
		case x > 0.45:
			far++
		}
	}
	// Both zones cover a tenth of the domain, so the counts compare
	// directly as densities.
	if far == 0 {
		far = 1
	}
	if ratio := float64(near) / float64(far); ratio < 5 {
		t.Errorf("got density ratio %g (near %d, far %d), want at least 5", ratio, near, far)
	}
}

func TestWarpedSorted(t *testing.T) {
	f := func(x float64) float64 { return math.Sin(math.Pi / x) }
	elements := Warped(f, Interval(-0.5, 0.5), Options{Count: 100, Warp: WarpTanh})
	lastX := math.Inf(-1)
	for _, el := range elements {
		if el.Kind != PointKind {
			continue
		}
		if el.Point.X < lastX {
			t.Fatalf("points not sorted: %g after %g", el.Point.X, lastX)
		}
		lastX = el.Point.X
	}
}

func TestWarpedRebreaksAfterSort(t *testing.T) {
	// A step discontinuity away from the warp center: only the post-sort
	// jump scan can place the break marker correctly, since evaluation
	// order and x order differ.
	f := func(x float64) float64 {
		if x < 0.3 {
			return 0
		}
		return 5
	}
	elements := Warped(f, Interval(-1, 1), Options{Count: 100})
	lines := Assemble(slices.Values(elements))
	if len(lines) != 2 {
		t.Fatalf("got %d polylines, want 2", len(lines))
	}
	for _, pt := range lines[0] {
		if pt.X >= 0.3 {
			t.Errorf("point %v on the low side has x >= 0.3", pt)
		}
	}
}

func TestWarpedDomainContainment(t *testing.T) {
	f := math.Cos
	dom := Interval(-2, 3)
	// An off-center singularity center exercises the asymmetric scaling.
	elements := Warped(f, dom, Options{Count: 150, Center: 1})
	for _, el := range elements {
		if el.Kind == PointKind && !dom.Contains(el.Point.X) {
			t.Errorf("point %v outside domain %v", el.Point, dom)
		}
	}
}

func TestWarpedCenterOutsideDomain(t *testing.T) {
	// Zero is the default center, but it isn't in the domain; the sampler
	// falls back on the domain midpoint rather than clumping all samples at
	// one end.
	f := math.Sin
	elements := Warped(f, Interval(2, 4), Options{Count: 100})
	var lo, hi int
	for _, el := range elements {
		if el.Kind != PointKind {
			continue
		}
		if el.Point.X < 3 {
			lo++
		} else {
			hi++
		}
	}
	if lo == 0 || hi == 0 {
		t.Errorf("samples clumped to one side: %d below midpoint, %d above", lo, hi)
	}
}

func TestWarpedDeterminism(t *testing.T) {
	f := func(x float64) float64 { return math.Sin(math.Pi / x) }
	dom := Interval(-0.5, 0.5)
	opts := Options{Count: 100}
	diff(t, Warped(f, dom, opts), Warped(f, dom, opts))
}
