// Adaptive Gauss–Kronrod driver.
//
// The driver keeps a flat worklist of active subintervals and two parallel
// sequences of per-subinterval estimates and error estimates. Converged
// subintervals are frozen: their contribution stays in the running totals and
// they are dropped from the worklist, so each refinement round evaluates only
// freshly bisected halves. Summation order is fixed (worklist order, ascending
// nodes inside each subinterval), which makes results bit-reproducible for
// identical inputs.
package quadgk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Integrate computes ∫ f(x) dx over [a, b] with adaptive Gauss–Kronrod
// quadrature. Either bound may be ±Inf; infinite domains are substituted onto
// a finite reference domain first (see mapDomain in this package).
//
// Returns the integral estimate and an error describing the first violated
// precondition, if any. A run that fails to reach the tolerance within
// MaxIter rounds still returns its best estimate with a nil error; use
// IntegrateWithStats when convergence must be checked.
//
// Preconditions and validation (in order):
//  1. Tolerances positive and finite, MaxIter ≥ 1, Subdivisions ≥ 1
//     (ErrBadTolerance, ErrBadMaxIter, ErrBadSubdivisions).
//  2. f must be non-nil (ErrNilIntegrand).
//  3. Neither bound may be NaN (ErrNaNBound).
//  4. a must not exceed b (ErrInvalidDomain).
//
// Special cases:
//   - a == b (including equal infinities) returns 0 without calling f.
//   - Non-finite values produced by f propagate into the result unchanged.
//
// Example:
//
//	v, err := quadgk.Integrate(func(x float64) float64 { return x * x }, 0, 1)
//	// v ≈ 1/3
func Integrate(f Func, a, b float64, opts ...Option) (float64, error) {
	res, err := IntegrateWithStats(f, a, b, opts...)

	return res.Value, err
}

// IntegrateWithStats is Integrate plus run introspection: the final error
// bound, the number of evaluation rounds, the active worklist size and
// whether the tolerance was met. Callers that need hard accuracy guarantees
// should check Result.Converged rather than rely on the bare value.
func IntegrateWithStats(f Func, a, b float64, opts ...Option) (Result, error) {
	// 1) Assemble configuration from defaults and functional options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate configuration first, then the call arguments.
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	if f == nil {
		return Result{}, ErrNilIntegrand
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return Result{}, fmt.Errorf("%w: [%g, %g]", ErrNaNBound, a, b)
	}

	// 3) Degenerate and inverted domains. The degenerate case never calls f.
	if a == b {
		return Result{Converged: true}, nil
	}
	if a > b {
		return Result{}, fmt.Errorf("%w: lower %g exceeds upper %g", ErrInvalidDomain, a, b)
	}

	// 4) Map infinite domains onto a finite reference domain and pick the rule.
	g, lo, hi, rl := mapDomain(f, a, b)
	if err := rl.validate(); err != nil {
		return Result{}, err
	}

	// 5) Seed the worklist with an equal partition and evaluate it.
	r := newRunner(g, rl, lo, hi)
	r.seed(cfg.Subdivisions)
	r.evaluate()

	// 6) Refine while the summed error exceeds the tolerance and rounds remain.
	//    The tolerance tracks the running total, so it moves as the estimate
	//    sharpens. A stalled round (nothing bisected) cannot make progress and
	//    ends the loop early.
	iter := 1
	tol := math.Max(cfg.AbsTol, cfg.RelTol*math.Abs(r.qTot))
	for r.eTot > tol && iter < cfg.MaxIter {
		if !r.refine(tol) {
			break
		}
		r.evaluate()
		iter++
		tol = math.Max(cfg.AbsTol, cfg.RelTol*math.Abs(r.qTot))
	}

	// 7) Report the best available estimate, converged or not.
	return Result{
		Value:        r.qTot,
		ErrorBound:   r.eTot,
		Iterations:   iter,
		Subintervals: len(r.q),
		Converged:    r.eTot <= tol,
	}, nil
}

// runner holds the mutable state of one adaptive integration run.
type runner struct {
	f    Func      // mapped integrand; read-only within the run
	rl   rule      // Kronrod pair applied to every subinterval
	lo   float64   // lower edge of the mapped domain
	hi   float64   // upper edge of the mapped domain
	subs []float64 // active subintervals, flat: subinterval i is subs[2i], subs[2i+1]
	q    []float64 // per-subinterval estimates, q[i] belongs to subs[2i:2i+2]
	errs []float64 // per-subinterval error estimates, aligned with q
	y    []float64 // scratch: integrand values at the mapped Kronrod nodes
	yg   []float64 // scratch: integrand values at the embedded Gauss nodes
	qTot float64   // running total over frozen and active subintervals
	eTot float64   // running error total over frozen and active subintervals
}

// newRunner allocates a runner with scratch buffers sized for the rule.
func newRunner(f Func, rl rule, lo, hi float64) *runner {
	return &runner{
		f:  f,
		rl: rl,
		lo: lo,
		hi: hi,
		y:  make([]float64, rl.size()),
		yg: make([]float64, len(rl.wg)),
	}
}

// seed fills the worklist with n equal subintervals covering [lo, hi].
func (r *runner) seed(n int) {
	step := (r.hi - r.lo) / float64(n)
	r.subs = make([]float64, 0, 2*n)
	var i int
	for i = 0; i < n; i++ {
		r.subs = append(r.subs, r.lo+float64(i)*step, r.lo+float64(i+1)*step)
	}
}

// evaluate applies the rule to every active subinterval, replacing the
// estimate sequences, then folds the fresh contributions into the totals.
// The 1:1 index correspondence between subs pairs and q/errs entries is
// re-established on every call.
func (r *runner) evaluate() {
	n := len(r.subs) / 2
	r.q = make([]float64, n)
	r.errs = make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		r.q[i], r.errs[i] = r.rl.apply(r.f, r.subs[2*i], r.subs[2*i+1], r.y, r.yg)
	}

	r.qTot += floats.Sum(r.q)
	r.eTot += floats.Sum(r.errs)
}

// refine bisects every active subinterval whose error estimate exceeds its
// width-proportional share of the tolerance budget, removing the bisected
// contribution from the totals. Subintervals within their share are frozen:
// dropped from the worklist with their contribution kept. Each bisection
// halves the offending width, so the largest active width strictly decreases
// from round to round.
//
// Returns false when no subinterval qualified, i.e. refinement stalled on
// rounding noise while the summed error still sits above the tolerance.
func (r *runner) refine(tol float64) bool {
	width := r.hi - r.lo
	next := make([]float64, 0, 2*len(r.subs))
	var i int
	var slo, shi, mid float64
	for i = 0; i < len(r.q); i++ {
		slo, shi = r.subs[2*i], r.subs[2*i+1]
		if r.errs[i] > tol*(shi-slo)/width {
			mid = (slo + shi) / 2
			next = append(next, slo, mid, mid, shi)
			r.qTot -= r.q[i]
			r.eTot -= r.errs[i]
		}
	}
	r.subs = next

	return len(next) > 0
}
