package quadgk

import "math"

// domainKind classifies an ordered bound pair (a < b, NaN already rejected).
type domainKind int

const (
	// domainFinite covers [a, b] with both bounds finite.
	domainFinite domainKind = iota

	// domainUpperInf covers [a, +∞).
	domainUpperInf

	// domainLowerInf covers (-∞, b].
	domainLowerInf

	// domainBothInf covers (-∞, +∞).
	domainBothInf
)

// classify derives the domain kind from the bounds.
func classify(a, b float64) domainKind {
	lower := math.IsInf(a, -1)
	upper := math.IsInf(b, 1)
	switch {
	case lower && upper:
		return domainBothInf
	case lower:
		return domainLowerInf
	case upper:
		return domainUpperInf
	default:
		return domainFinite
	}
}

// mapDomain rewrites an integral over [a, b] as an integral the adaptive loop
// can evaluate directly: the integrand actually called, the mapped bounds, and
// the rule pair to apply. Finite domains pass through untouched with the
// 21-point rule; infinite domains are substituted onto a finite reference
// domain and use the 15-point rule.
//
// Substitutions (all increasing, so the mapped bounds stay ordered):
//
//	(-∞, +∞): x = t/(1-t²),   dx = (1+t²)/(1-t²)² dt,  t ∈ (-1, 1)
//	[a, +∞):  x = a + t/(1-t), dx = dt/(1-t)²,          t ∈ [0, 1)
//	(-∞, b]:  x = b + t/(1+t), dx = dt/(1+t)²,          t ∈ (-1, 0]
//
// The singular endpoints t = ±1 are never touched: every Kronrod node is
// interior, and subdivision midpoints stay strictly inside the domain.
func mapDomain(f Func, a, b float64) (Func, float64, float64, rule) {
	switch classify(a, b) {
	case domainBothInf:
		return wrapBothInf(f), -1.0, 1.0, gk15
	case domainLowerInf:
		return wrapLowerInf(f, b), -1.0, 0.0, gk15
	case domainUpperInf:
		return wrapUpperInf(f, a), 0.0, 1.0, gk15
	default:
		return f, a, b, gk21
	}
}

// wrapBothInf maps ∫_{-∞}^{+∞} f(x) dx onto t ∈ (-1, 1) via x = t/(1-t²).
func wrapBothInf(f Func) Func {
	return func(t float64) float64 {
		h := 1.0 / (1.0 - t*t)

		return f(t*h) * (1.0 + t*t) * h * h
	}
}

// wrapUpperInf maps ∫_{a}^{+∞} f(x) dx onto t ∈ [0, 1) via x = a + t/(1-t).
func wrapUpperInf(f Func, a float64) Func {
	return func(t float64) float64 {
		h := 1.0 / (1.0 - t)

		return f(a+t*h) * h * h
	}
}

// wrapLowerInf maps ∫_{-∞}^{b} f(x) dx onto t ∈ (-1, 0] via x = b + t/(1+t).
func wrapLowerInf(f Func, b float64) Func {
	return func(t float64) float64 {
		h := 1.0 / (1.0 + t)

		return f(b+t*h) * h * h
	}
}
