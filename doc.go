// Package sample turns mathematical functions into sequences of plottable
// points suitable for vector rendering. It was designed to serve the plotting
// needs of document-authoring tools, but it is intended to be general enough
// to be useful for other applications.
//
// # Samplers
//
// The package provides three sampling strategies:
//
//   - Fixed/dense sampling on a uniform grid (see [Uniform])
//   - Density-warped sampling that concentrates points near a known
//     singularity or oscillation center (see [Warped])
//   - Curvature-adaptive sampling with a variable step bounded by a
//     slope-difference curvature estimate (see [Adaptive])
//
// [UniformCurve], [AdaptiveCurve], and [Polar] are the parametric and polar
// counterparts of the scalar samplers.
//
// [Interpolate] produces the same kind of output for a set of user-given
// points, by threading a centripetal Catmull-Rom spline through them.
//
// # Sample sequences
//
// Samplers produce ordered sequences of [Element] values, mixing sample
// points with break markers. A break marker records that the curve is
// discontinuous between its neighbors; renderers must not draw a connecting
// line across one. Emitted sequences never start or end with a break marker
// and never contain two consecutive break markers.
//
// User functions are untrusted: they may be undefined, divergent, or panic
// outright at arbitrary inputs. Every evaluation goes through a guard that
// converts panics, NaN, infinities, and implausibly large magnitudes into an
// explicit "invalid" outcome. Invalid evaluations become break markers, never
// errors; samplers only panic when the caller violates their contract (an
// empty domain, a negative point count).
//
// [Assemble] normalizes a sample sequence into maximal gap-free polylines,
// each of which can be rendered independently. [WriteSVG] serializes
// polylines as SVG path commands.
//
// # Iterators
//
// Samplers that can produce their output one element at a time return
// iterators, to avoid having to allocate slices. [Warped] has to sort its
// output and thus returns the slice it had to build up. You can use
// [slices.Collect] to turn iterators into slices, and [slices.Values] to turn
// slices into iterators.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [Adaptive sampling of parametric curves] by Luiz Henrique de Figueiredo
//   - [Centripetal Catmull-Rom spline]
//   - [Yacas book of algorithms: adaptive plotting]
//
// [Adaptive sampling of parametric curves]: https://lhf.impa.br/ftp/papers/sp.pdf
// [Centripetal Catmull-Rom spline]: https://en.wikipedia.org/wiki/Centripetal_Catmull%E2%80%93Rom_spline
// [Yacas book of algorithms: adaptive plotting]: https://yacas.readthedocs.io/en/latest/book_of_algorithms/basic.html
package sample
