package sample

import (
	"fmt"
	"math"
)

// Default values used for zero-valued [Options] fields.
const (
	// DefaultCount is the default number of subdivisions for the fixed and
	// density-warped samplers.
	DefaultCount = 100
	// DefaultTolerance is the default curvature error tolerance of the
	// adaptive sampler. It is expressed in slope units, output change per
	// unit of input.
	DefaultTolerance = 0.01
	// DefaultJumpThreshold is the default output-unit jump between
	// consecutive samples beyond which a discontinuity is assumed.
	DefaultJumpThreshold = 2.0
	// DefaultMaxRefines is the default number of times the adaptive sampler
	// will halve its step at one position before accepting the step.
	DefaultMaxRefines = 10
	// DefaultMaxPoints is the default ceiling on the number of emitted sample
	// points.
	DefaultMaxPoints = 4000
	// DefaultGrowFactor is the default factor by which the adaptive sampler
	// grows its step after a low-curvature step.
	DefaultGrowFactor = 1.4
	// DefaultMaxMagnitude is the default ceiling on result magnitudes.
	// Results beyond it are treated as divergent rather than plottable.
	DefaultMaxMagnitude = 1e6
)

// Options holds the tuning parameters of the samplers. The zero value is
// ready to use: zero-valued fields assume the documented defaults. All
// parameters are transient per sampling call; samplers never retain them.
type Options struct {
	// Count is the number of subdivisions used by [Uniform], [UniformCurve],
	// [Warped], and [Interpolate]; they evaluate at Count+1 positions. It
	// also seeds the initial step of the adaptive samplers.
	Count int

	// MinStep and MaxStep bound the adaptive step size. The defaults are
	// Width/(64*Count) and Width/8 of the sampled domain.
	MinStep float64
	MaxStep float64

	// Tolerance is the curvature error beyond which the adaptive sampler
	// refines its step. The error is the difference between the slopes of a
	// step's two halves, so it is independent of the step width and stays
	// large at a sharp feature no matter where it falls inside the step.
	Tolerance float64

	// RelativeError normalizes the curvature error by the local value
	// magnitude, catching small-amplitude fast oscillation that absolute
	// error alone would miss.
	RelativeError bool

	// MaxRefines bounds how often one step may be halved before it is
	// accepted regardless of the error estimate. Accepting is a deliberate
	// precision/termination trade-off, not a failure.
	MaxRefines int

	// GrowFactor is the step growth factor applied after steps whose error
	// estimate comes in well under tolerance.
	GrowFactor float64

	// MaxPoints is a hard ceiling on emitted sample points. Reaching it ends
	// sampling with whatever has been accumulated.
	MaxPoints int

	// JumpThreshold is the output-unit jump between consecutive valid
	// samples beyond which a break marker is inserted. The threshold is
	// blended: for same-sign pairs the comparison is relative to the larger
	// magnitude, so steep but continuous regions far from the x-axis do not
	// read as discontinuities, while pairs that touch or cross zero are
	// compared absolutely.
	JumpThreshold float64

	// Center is the point of the domain near which [Warped] concentrates
	// samples. The default is 0, or the domain midpoint when 0 lies outside
	// the domain.
	Center float64

	// Warp selects the warp function used by [Warped]. Defaults to
	// [WarpCubic].
	Warp Warp

	// MaxMagnitude is the evaluator guard's ceiling on result magnitudes.
	MaxMagnitude float64

	// SingularEps rejects inputs with absolute value below it without
	// invoking the function, guarding 1/x-style singularities at zero. Zero
	// disables the input guard; the magnitude ceiling already classifies
	// divergent results, since in Go division by zero yields ±Inf rather
	// than raising.
	SingularEps float64
}

// withDefaults returns opts with zero-valued fields replaced by their
// defaults, sized for dom. It panics on contract violations; malformed
// configuration is a programmer error, unlike malformed function behavior.
func (opts Options) withDefaults(dom Domain) Options {
	if opts.Count < 0 || opts.MaxRefines < 0 || opts.MaxPoints < 0 {
		panic("sample: counts must not be negative")
	}
	if opts.Tolerance < 0 || opts.MinStep < 0 || opts.MaxStep < 0 ||
		opts.JumpThreshold < 0 || opts.MaxMagnitude < 0 || opts.SingularEps < 0 {
		panic("sample: tuning parameters must not be negative")
	}
	if opts.Count == 0 {
		opts.Count = DefaultCount
	}
	if opts.Tolerance == 0 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.MaxRefines == 0 {
		opts.MaxRefines = DefaultMaxRefines
	}
	if opts.GrowFactor == 0 {
		opts.GrowFactor = DefaultGrowFactor
	} else if opts.GrowFactor < 1 {
		panic("sample: GrowFactor must be >= 1")
	}
	if opts.MaxPoints == 0 {
		opts.MaxPoints = DefaultMaxPoints
	}
	if opts.JumpThreshold == 0 {
		opts.JumpThreshold = DefaultJumpThreshold
	}
	if opts.MaxMagnitude == 0 {
		opts.MaxMagnitude = DefaultMaxMagnitude
	}
	if opts.MaxStep == 0 {
		opts.MaxStep = dom.Width() / 8
	}
	if opts.MinStep == 0 {
		opts.MinStep = min(dom.Width()/(64*float64(opts.Count)), opts.MaxStep)
	}
	if opts.MinStep > opts.MaxStep {
		panic(fmt.Sprintf("sample: MinStep %g exceeds MaxStep %g", opts.MinStep, opts.MaxStep))
	}
	if opts.Warp == nil {
		opts.Warp = WarpCubic
	}
	if opts.Center == 0 || !dom.Contains(opts.Center) {
		if !dom.Contains(0) {
			opts.Center = dom.Lerp(0.5)
		} else {
			opts.Center = 0
		}
	}
	return opts
}

// jump reports whether the gap between two consecutive valid values reads as
// a discontinuity. For same-sign pairs the threshold is relative to the
// larger magnitude, so a steep but continuous run such as y = e^x or the
// descent of x² toward its vertex never breaks apart, no matter how fast it
// moves. A pair that touches or crosses zero is compared absolutely; a
// function that leaps across the axis by more than the threshold is
// discontinuous no matter its magnitude.
func (opts Options) jump(y0, y1 float64) bool {
	d := math.Abs(y1 - y0)
	scale := 1.0
	if y0*y1 > 0 {
		scale = max(math.Abs(y0), math.Abs(y1), 1.0)
	}
	return d > opts.JumpThreshold*scale
}

// jumpPt is the parametric counterpart of jump, comparing euclidean distance
// against the threshold scaled by the larger distance from the origin.
func (opts Options) jumpPt(p0, p1 Point) bool {
	d := p0.Distance(p1)
	scale := max(math.Hypot(p0.X, p0.Y), math.Hypot(p1.X, p1.Y), 1.0)
	return d > opts.JumpThreshold*scale
}
