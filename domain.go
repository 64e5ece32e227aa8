package sample

import (
	"fmt"
	"math"
)

// Domain is a closed interval of the independent variable: x for scalar
// functions, t for parametric curves, θ for polar curves.
type Domain struct {
	Min float64
	Max float64
}

// Interval returns the domain [min, max].
func Interval(min, max float64) Domain {
	return Domain{Min: min, Max: max}
}

func (dom Domain) String() string {
	return fmt.Sprintf("[%g, %g]", dom.Min, dom.Max)
}

// Width returns the length of the interval.
func (dom Domain) Width() float64 {
	return dom.Max - dom.Min
}

// Clamp clamps x to the interval.
func (dom Domain) Clamp(x float64) float64 {
	return min(max(x, dom.Min), dom.Max)
}

// Contains reports whether x lies within the closed interval.
func (dom Domain) Contains(x float64) bool {
	return x >= dom.Min && x <= dom.Max
}

// Lerp maps t ∈ [0, 1] linearly onto the interval.
func (dom Domain) Lerp(t float64) float64 {
	return dom.Min + t*(dom.Max-dom.Min)
}

// validate panics unless the domain is a non-empty, finite interval. Samplers
// call it on entry; a malformed domain is a programmer error, not a numerical
// edge case.
func (dom Domain) validate() {
	if math.IsNaN(dom.Min) || math.IsNaN(dom.Max) ||
		math.IsInf(dom.Min, 0) || math.IsInf(dom.Max, 0) {
		panic(fmt.Sprintf("sample: domain bounds must be finite, got %v", dom))
	}
	if dom.Min >= dom.Max {
		panic(fmt.Sprintf("sample: domain must satisfy Min < Max, got %v", dom))
	}
}
