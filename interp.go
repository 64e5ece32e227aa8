package sample

import (
	"iter"
	"math"
)

// Interpolate produces a smooth curve through the given points, in the same
// element form the function samplers produce. The curve is a centripetal
// Catmull-Rom spline, which passes through every input point in order and
// does not form cusps or self-intersections between neighboring points.
//
// opts.Count subdivisions are distributed across the spline's segments. Zero
// or one input points yield zero or one elements; two points yield a
// straight line. Consecutive duplicate points are skipped.
//
// The input points are the caller's; they are read once and not retained.
func Interpolate(points []Point, opts Options) iter.Seq[Element] {
	for _, pt := range points {
		if pt.IsNaN() || pt.IsInf() {
			panic("sample: interpolation points must be finite")
		}
	}
	if opts.Count < 0 {
		panic("sample: counts must not be negative")
	}
	count := opts.Count
	if count == 0 {
		count = DefaultCount
	}

	pts := dedupe(points)
	return func(yield func(Element) bool) {
		if len(pts) == 0 {
			return
		}
		if !yield(El(pts[0])) {
			return
		}
		if len(pts) == 1 {
			return
		}
		segs := len(pts) - 1
		perSeg := max(count/segs, 1)
		for i := range segs {
			p0 := pts[max(i-1, 0)]
			p1 := pts[i]
			p2 := pts[i+1]
			p3 := pts[min(i+2, len(pts)-1)]
			for j := 1; j <= perSeg; j++ {
				t := float64(j) / float64(perSeg)
				if !yield(El(catmullRom(p0, p1, p2, p3, t))) {
					return
				}
			}
		}
	}
}

// dedupe removes consecutive duplicate points, which would produce
// zero-length knot intervals.
func dedupe(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, pt := range points {
		if len(out) > 0 && out[len(out)-1] == pt {
			continue
		}
		out = append(out, pt)
	}
	return out
}

// catmullRom evaluates the centripetal Catmull-Rom segment from p1 to p2 at
// t ∈ [0, 1], using the Barry-Goldman pyramid with knots spaced by the
// square root of chord length. p0 and p3 are the neighboring points, or the
// segment's own endpoints at the ends of the point set.
func catmullRom(p0, p1, p2, p3 Point, t float64) Point {
	knot := func(a, b Point, prev float64) float64 {
		d := math.Sqrt(a.Distance(b))
		if d == 0 {
			// Phantom neighbor at the ends; fall back on a uniform interval.
			d = 1
		}
		return prev + d
	}
	t0 := 0.0
	t1 := knot(p0, p1, t0)
	t2 := knot(p1, p2, t1)
	t3 := knot(p2, p3, t2)
	tt := t1 + t*(t2-t1)

	lerp := func(a, b Point, ta, tb float64) Point {
		return a.Lerp(b, (tt-ta)/(tb-ta))
	}
	a1 := lerp(p0, p1, t0, t1)
	a2 := lerp(p1, p2, t1, t2)
	a3 := lerp(p2, p3, t2, t3)
	b1 := lerp(a1, a2, t0, t2)
	b2 := lerp(a2, a3, t1, t3)
	return lerp(b1, b2, t1, t2)
}
