package sample

import "math"

// Func is a scalar user function y = f(x). It is borrowed by the sampler for
// the duration of one call and invoked read-only; it may be undefined,
// divergent, or panic at arbitrary inputs.
type Func func(x float64) float64

// Curve is a parametric user function t ↦ (x, y). Like [Func], it is
// untrusted and borrowed per call.
type Curve func(t float64) Point

// finite reports whether y is a plottable value: not NaN, not infinite, and
// below the magnitude ceiling that separates truly divergent results from
// merely large-but-plottable ones.
func finite(y, ceiling float64) bool {
	return !math.IsNaN(y) && !math.IsInf(y, 0) && math.Abs(y) <= ceiling
}

// guard wraps a scalar function so that evaluation never fails: panics in f,
// NaN, infinities, near-singular inputs, and off-screen magnitudes all come
// back as ok == false. Invalid is a first-class outcome, not an error.
func guard(f Func, opts Options) func(x float64) (float64, bool) {
	return func(x float64) (y float64, ok bool) {
		if opts.SingularEps > 0 && math.Abs(x) < opts.SingularEps {
			return 0, false
		}
		defer func() {
			if recover() != nil {
				y, ok = 0, false
			}
		}()
		y = f(x)
		return y, finite(y, opts.MaxMagnitude)
	}
}

// guardCurve is the parametric counterpart of guard. Both coordinates of the
// result must be plottable.
func guardCurve(c Curve, opts Options) func(t float64) (Point, bool) {
	return func(t float64) (pt Point, ok bool) {
		if opts.SingularEps > 0 && math.Abs(t) < opts.SingularEps {
			return Point{}, false
		}
		defer func() {
			if recover() != nil {
				pt, ok = Point{}, false
			}
		}()
		pt = c(t)
		return pt, finite(pt.X, opts.MaxMagnitude) && finite(pt.Y, opts.MaxMagnitude)
	}
}

// polar composes a radius function r(θ) into the Cartesian curve
// θ ↦ (r·cos θ, r·sin θ).
func polar(r Func) Curve {
	return func(th float64) Point {
		sin, cos := math.Sincos(th)
		rv := r(th)
		return Pt(rv*cos, rv*sin)
	}
}
