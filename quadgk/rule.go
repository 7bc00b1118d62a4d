package quadgk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Double-precision machine constants used by the error estimator.
const (
	// epsMach is the double-precision machine epsilon, 2⁻⁵².
	epsMach = 0x1p-52

	// underflowMin is the smallest positive normalized double, 2⁻¹⁰²².
	underflowMin = 0x1p-1022
)

// rule bundles one Gauss–Kronrod pair on the reference interval [-1, 1].
//
// xgk holds every Kronrod node in ascending order, wgk the matching Kronrod
// weights, and wg the weights of the embedded Gauss rule. The Gauss nodes are
// the odd-indexed entries of xgk, so len(wg) == len(xgk)/2.
type rule struct {
	xgk []float64 // all Kronrod nodes, ascending
	wgk []float64 // Kronrod weights, aligned with xgk
	wg  []float64 // embedded Gauss weights, applied at odd indices of xgk
}

// size returns the number of Kronrod nodes (15 or 21 for the built-in pairs).
func (r rule) size() int { return len(r.xgk) }

// validate reports ErrInvalidRule when the table lengths disagree.
// The built-in pairs always pass; the check guards hand-assembled rules.
func (r rule) validate() error {
	if len(r.xgk) == 0 || len(r.xgk) != len(r.wgk) || len(r.wg) != len(r.xgk)/2 {
		return fmt.Errorf("%w: %d nodes, %d Kronrod weights, %d Gauss weights",
			ErrInvalidRule, len(r.xgk), len(r.wgk), len(r.wg))
	}

	return nil
}

// apply evaluates the pair on a single subinterval [lo, hi] and returns the
// Kronrod estimate together with its stabilized absolute error estimate.
//
// y and yg are caller-owned scratch slices of length len(xgk) and len(wg);
// they let the adaptive loop reuse one pair of buffers for every subinterval.
//
// Estimation follows the classical scheme:
//
//	resk = Σ wgk[j]·f(c + hw·xgk[j])        Kronrod sum
//	resg = Σ wg[i]·f at the Gauss nodes      embedded Gauss sum
//	raw  = |resk - resg|·hw
//
// The raw discrepancy is then damped against resasc, the Kronrod sum of
// |f - mean|, via min(1, (200·raw/resasc)^1.5), and floored at 50·ε times the
// Kronrod sum of |f| once that is safely above the underflow threshold. The
// damping keeps the estimate honest for near-polynomial integrands, where the
// raw discrepancy collapses to rounding noise.
func (r rule) apply(f Func, lo, hi float64, y, yg []float64) (q, abserr float64) {
	hw := (hi - lo) / 2 // half-width of the subinterval
	c := (lo + hi) / 2  // center of the subinterval

	// 1) Evaluate the integrand at every mapped node, ascending order.
	var j int
	var x float64
	for j, x = range r.xgk {
		y[j] = f(c + hw*x)
	}

	// 2) Kronrod sum over all nodes.
	resk := floats.Dot(r.wgk, y)

	// 3) Embedded Gauss sum over the odd-indexed nodes.
	for j = range r.wg {
		yg[j] = y[2*j+1]
	}
	resg := floats.Dot(r.wg, yg)

	// 4) Scaled magnitude and deviation sums for the stability correction.
	//    reskh is the Kronrod mean of f over the subinterval.
	reskh := resk * 0.5
	var resabs, resasc float64
	var w float64
	for j, w = range r.wgk {
		resabs += w * math.Abs(y[j])
		resasc += w * math.Abs(y[j]-reskh)
	}

	// 5) Scale the sums from the reference interval to [lo, hi].
	q = resk * hw
	dhw := math.Abs(hw)
	resabs *= dhw
	resasc *= dhw

	// 6) Raw discrepancy between the Kronrod and Gauss estimates.
	abserr = math.Abs((resk - resg) * hw)

	// 7) Stability correction: damp the raw discrepancy against the
	//    deviation sum, then floor at rounding level.
	if resasc != 0 && abserr != 0 {
		abserr = resasc * math.Min(1, math.Pow(200*abserr/resasc, 1.5))
	}
	if resabs > underflowMin/(50*epsMach) {
		abserr = math.Max(epsMach*50*resabs, abserr)
	}

	return q, abserr
}
