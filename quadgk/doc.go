// Package quadgk evaluates one-dimensional definite integrals with
// adaptive Gauss–Kronrod quadrature.
//
// The package handles finite, semi-infinite and doubly infinite domains:
//
//   - [a, b] finite          — 21-point Kronrod rule with embedded 10-point Gauss.
//   - [a, +∞), (-∞, b], ℝ    — mapped onto a finite reference domain by a
//     rational change of variable, then integrated with the 15-point Kronrod
//     rule with embedded 7-point Gauss.
//
// The domain is first split into Subdivisions equal parts. Each part gets a
// Kronrod estimate and an error estimate from the Gauss/Kronrod discrepancy.
// While the summed error exceeds max(AbsTol, RelTol·|estimate|), every part
// whose error exceeds its width-proportional share of the budget is bisected
// and re-evaluated; parts within budget keep their contribution and are not
// revisited. The loop stops on convergence or after MaxIter rounds, returning
// the best available estimate either way — non-convergence is not an error.
//
// Usage:
//
//	import "github.com/katalvlaran/quadra/quadgk"
//
//	v, err := quadgk.Integrate(math.Cos, 0, math.Pi/2)
//	// v ≈ 1.0
//
//	// Gaussian mass over ℝ:
//	v, err = quadgk.Integrate(
//	    func(x float64) float64 { return math.Exp(-x * x) },
//	    math.Inf(-1), math.Inf(1),
//	    quadgk.WithRelTolerance(1e-12),
//	)
//	// v ≈ √π
//
// Use IntegrateWithStats to also obtain the final error bound, the number of
// refinement rounds and whether the tolerance was actually met.
//
// Complexity:
//
//   - Time:  O(n·p) integrand calls, where n is the number of evaluated
//     subintervals (≤ Subdivisions·2^MaxIter) and p is the rule size (15 or 21).
//   - Space: O(n) for the active worklist; constant tables are shared.
//
// Every call owns its working storage, so concurrent calls are safe.
//
// Errors (sentinel):
//
//   - ErrInvalidDomain   — lower bound strictly greater than upper bound.
//   - ErrInvalidArgument — nil integrand, NaN bound, non-positive or
//     non-finite tolerance, MaxIter < 1, Subdivisions < 1 (each specific
//     violation has its own sentinel matching ErrInvalidArgument).
//   - ErrInvalidRule     — node and weight table lengths disagree.
package quadgk
