// Package quadgh evaluates Gauss–Hermite integrals of the form
//
//	∫_{-∞}^{+∞} exp(-x²)·f(x) dx
//
// with a fixed 64-point rule: Integrate(f) returns Σ wᵢ·f(xᵢ) over the
// tabulated Hermite nodes. The weight exp(-x²) is part of the rule, so f is
// the bare factor multiplying it.
//
// The rule is exact for polynomial f up to degree 127 and needs exactly 64
// integrand calls. There is no adaptivity and no error estimate; use quadgk
// with explicit infinite bounds when accuracy control is required.
//
// Usage:
//
//	import "github.com/katalvlaran/quadra/quadgh"
//
//	v := quadgh.Integrate(func(x float64) float64 { return x * x })
//	// v ≈ √π/2
package quadgh
