package quadgh

import "gonum.org/v1/gonum/floats"

// Func is the bare factor f in ∫ exp(-x²)·f(x) dx. The Gaussian weight is
// part of the rule and must not be included in f.
type Func func(x float64) float64

// Integrate evaluates ∫_{-∞}^{+∞} exp(-x²)·f(x) dx with the fixed 64-point
// Gauss–Hermite rule. Exactly 64 integrand calls, ascending node order, no
// adaptivity. Non-finite values produced by f propagate into the result.
//
// A nil f is a programmer error and panics.
//
// Example:
//
//	v := quadgh.Integrate(func(x float64) float64 { return 1 })
//	// v ≈ √π
func Integrate(f Func) float64 {
	if f == nil {
		panic("quadgh: integrand is nil")
	}

	return apply(f, xgh64, wgh64)
}

// apply evaluates an arbitrary Hermite rule given by parallel node and weight
// tables. Split out from Integrate so alternative orders stay a table away.
func apply(f Func, x, w []float64) float64 {
	y := make([]float64, len(x))
	var i int
	var xi float64
	for i, xi = range x {
		y[i] = f(xi)
	}

	return floats.Dot(w, y)
}
