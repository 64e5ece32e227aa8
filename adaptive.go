package sample

import (
	"iter"
	"math"
)

// relFloor bounds the denominator of the relative error estimate, so that
// zero crossings do not demand unbounded refinement.
const relFloor = 1e-6

// growCutoff is the fraction of the tolerance below which a step's error
// estimate is considered "very small" and the step is grown.
const growCutoff = 0.25

// Adaptive walks dom left to right with a variable step, spending the sample
// budget where curvature demands it. For each proposed step it probes the
// midpoint and estimates the local curvature as the difference between the
// slopes of the step's two halves, a second difference scaled by the half
// step. Unlike a raw midpoint-versus-chord deviation, the slope difference
// does not shrink with the step width, so a sharp feature stays visible to
// the estimate wherever it falls inside the step. If the error exceeds
// opts.Tolerance the step is halved and retried; if it comes in well under,
// the next step is grown by opts.GrowFactor. Accepted steps emit both the
// midpoint and the endpoint.
//
// Refinement is bounded three ways: the step never shrinks below
// opts.MinStep, one position is refined at most opts.MaxRefines times before
// the step is accepted as-is, and the total output is capped at
// opts.MaxPoints (plus a derived iteration ceiling). The caps are what make
// the walk terminate on functions with unbounded local variation; when they
// bite, precision degrades silently rather than failing.
//
// Invalid evaluations are stepped over, not retried: the sampler emits a
// break marker, advances past the bad position, and resumes with the first
// valid value it finds. When refinement bottoms out and the step endpoints
// still differ by more than opts.JumpThreshold, the gap is treated as a
// discontinuity rather than bridged.
//
// When the error estimate lands exactly on the tolerance, the step is
// accepted; termination wins over precision.
func Adaptive(f Func, dom Domain, opts Options) iter.Seq[Element] {
	dom.validate()
	opts = opts.withDefaults(dom)
	eval := guard(f, opts)
	return func(yield func(Element) bool) {
		em := &emitter{yield: yield, limit: opts.MaxPoints}

		x := dom.Min
		h := clampStep(dom.Width()/float64(opts.Count), opts)
		var yCurr tracked[float64]
		if y, ok := eval(x); ok {
			yCurr.set(y)
			if !em.point(Pt(x, y)) {
				return
			}
		} else {
			em.brk()
		}

		refines := 0
		maxIters := opts.MaxPoints * (opts.MaxRefines + 2)
		for iters := 0; x < dom.Max && iters < maxIters; iters++ {
			h = clampStep(h, opts)
			xNext := min(x+h, dom.Max)
			if xNext == x {
				// Step underflowed at this magnitude; cannot advance.
				return
			}
			yNext, okNext := eval(xNext)
			if !okNext {
				// Singularities are stepped over, not retried indefinitely.
				em.brk()
				x = xNext
				yCurr.clear()
				refines = 0
				continue
			}
			if !yCurr.ok {
				// Recovering from a prior singularity.
				if !em.point(Pt(xNext, yNext)) {
					return
				}
				x = xNext
				yCurr.set(yNext)
				refines = 0
				continue
			}

			xMid := 0.5 * (x + xNext)
			yMid, okMid := eval(xMid)
			if !okMid {
				// A discontinuity inside the step; accept the endpoint across
				// a break.
				em.brk()
				if !em.point(Pt(xNext, yNext)) {
					return
				}
				x = xNext
				yCurr.set(yNext)
				refines = 0
				continue
			}

			hh := xNext - x
			// |slope(mid, next) - slope(curr, mid)| over half-steps of hh/2.
			err := math.Abs(yNext-2*yMid+yCurr.v) / (0.5 * hh)
			if opts.RelativeError {
				scale := max(math.Abs(yCurr.v), math.Abs(yMid), math.Abs(yNext), relFloor)
				err /= scale
			}
			if err > opts.Tolerance && hh > opts.MinStep && refines < opts.MaxRefines {
				h = 0.5 * hh
				refines++
				continue
			}

			if err > opts.Tolerance && opts.jump(yCurr.v, yNext) {
				// Refinement bottomed out on a jump; don't bridge it.
				em.brk()
				if !em.point(Pt(xNext, yNext)) {
					return
				}
			} else {
				if !em.point(Pt(xMid, yMid)) {
					return
				}
				if !em.point(Pt(xNext, yNext)) {
					return
				}
			}
			if err < growCutoff*opts.Tolerance {
				h = hh * opts.GrowFactor
			} else {
				h = hh
			}
			x = xNext
			yCurr.set(yNext)
			refines = 0
		}
	}
}

// AdaptiveCurve is the parametric counterpart of [Adaptive]. The walk is
// identical, except that the curvature estimate is the euclidean norm of the
// velocity change between the step's two halves.
func AdaptiveCurve(c Curve, dom Domain, opts Options) iter.Seq[Element] {
	dom.validate()
	opts = opts.withDefaults(dom)
	eval := guardCurve(c, opts)
	return func(yield func(Element) bool) {
		em := &emitter{yield: yield, limit: opts.MaxPoints}

		t := dom.Min
		h := clampStep(dom.Width()/float64(opts.Count), opts)
		var pCurr tracked[Point]
		if pt, ok := eval(t); ok {
			pCurr.set(pt)
			if !em.point(pt) {
				return
			}
		} else {
			em.brk()
		}

		refines := 0
		maxIters := opts.MaxPoints * (opts.MaxRefines + 2)
		for iters := 0; t < dom.Max && iters < maxIters; iters++ {
			h = clampStep(h, opts)
			tNext := min(t+h, dom.Max)
			if tNext == t {
				return
			}
			pNext, okNext := eval(tNext)
			if !okNext {
				em.brk()
				t = tNext
				pCurr.clear()
				refines = 0
				continue
			}
			if !pCurr.ok {
				if !em.point(pNext) {
					return
				}
				t = tNext
				pCurr.set(pNext)
				refines = 0
				continue
			}

			tMid := 0.5 * (t + tNext)
			pMid, okMid := eval(tMid)
			if !okMid {
				em.brk()
				if !em.point(pNext) {
					return
				}
				t = tNext
				pCurr.set(pNext)
				refines = 0
				continue
			}

			hh := tNext - t
			err := math.Hypot(
				pNext.X-2*pMid.X+pCurr.v.X,
				pNext.Y-2*pMid.Y+pCurr.v.Y,
			) / (0.5 * hh)
			if opts.RelativeError {
				scale := max(
					math.Hypot(pCurr.v.X, pCurr.v.Y),
					math.Hypot(pMid.X, pMid.Y),
					math.Hypot(pNext.X, pNext.Y),
					relFloor,
				)
				err /= scale
			}
			if err > opts.Tolerance && hh > opts.MinStep && refines < opts.MaxRefines {
				h = 0.5 * hh
				refines++
				continue
			}

			if err > opts.Tolerance && opts.jumpPt(pCurr.v, pNext) {
				em.brk()
				if !em.point(pNext) {
					return
				}
			} else {
				if !em.point(pMid) {
					return
				}
				if !em.point(pNext) {
					return
				}
			}
			if err < growCutoff*opts.Tolerance {
				h = hh * opts.GrowFactor
			} else {
				h = hh
			}
			t = tNext
			pCurr.set(pNext)
			refines = 0
		}
	}
}

// Polar samples the polar curve r(θ) over the angle domain dom, composing it
// into the Cartesian curve θ ↦ (r·cos θ, r·sin θ) and sampling that
// adaptively.
func Polar(r Func, dom Domain, opts Options) iter.Seq[Element] {
	return AdaptiveCurve(polar(r), dom, opts)
}

// clampStep clamps h to [opts.MinStep, opts.MaxStep].
func clampStep(h float64, opts Options) float64 {
	return min(max(h, opts.MinStep), opts.MaxStep)
}
