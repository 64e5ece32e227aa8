package sample

import "iter"

// Uniform samples f at opts.Count+1 evenly spaced positions across dom.
//
// Evaluations run through the evaluator guard: invalid values become break
// markers and scanning continues, so a function that is undefined on part of
// the domain still yields a curve for the rest. A jump between consecutive
// valid values beyond opts.JumpThreshold is treated as a discontinuity and
// also inserts a break marker.
//
// The returned sequence satisfies the usual invariants: it never starts or
// ends with a break marker and never contains two in a row.
func Uniform(f Func, dom Domain, opts Options) iter.Seq[Element] {
	dom.validate()
	opts = opts.withDefaults(dom)
	eval := guard(f, opts)
	return func(yield func(Element) bool) {
		em := &emitter{yield: yield, limit: opts.MaxPoints}
		var last tracked[float64]
		n := opts.Count
		for i := range n + 1 {
			x := dom.Lerp(float64(i) / float64(n))
			y, ok := eval(x)
			if !ok {
				em.brk()
				last.clear()
				continue
			}
			if last.ok && opts.jump(last.v, y) {
				em.brk()
			}
			if !em.point(Pt(x, y)) {
				return
			}
			last.set(y)
		}
	}
}

// UniformCurve is the parametric counterpart of [Uniform]: it samples c at
// opts.Count+1 evenly spaced parameter values, detecting discontinuities by
// euclidean distance between consecutive points.
func UniformCurve(c Curve, dom Domain, opts Options) iter.Seq[Element] {
	dom.validate()
	opts = opts.withDefaults(dom)
	eval := guardCurve(c, opts)
	return func(yield func(Element) bool) {
		em := &emitter{yield: yield, limit: opts.MaxPoints}
		var last tracked[Point]
		n := opts.Count
		for i := range n + 1 {
			t := dom.Lerp(float64(i) / float64(n))
			pt, ok := eval(t)
			if !ok {
				em.brk()
				last.clear()
				continue
			}
			if last.ok && opts.jumpPt(last.v, pt) {
				em.brk()
			}
			if !em.point(pt) {
				return
			}
			last.set(pt)
		}
	}
}
