// Package quadgk defines core types and configuration options for the
// adaptive Gauss–Kronrod integrator.
//
// The integrator estimates ∫ f(x) dx over [a, b] by evaluating a Kronrod
// rule on a shrinking worklist of subintervals until the summed error
// estimate drops below max(AbsTol, RelTol·|total|) or MaxIter refinement
// rounds have run.
//
// Options:
//
//	– AbsTol:       absolute error tolerance (> 0, finite).
//	– RelTol:       relative error tolerance (> 0, finite).
//	– MaxIter:      cap on evaluation rounds, including the initial one (≥ 1).
//	– Subdivisions: number of equal parts the domain is split into first (≥ 1).
//
// Errors (sentinel):
//
//	– ErrInvalidDomain    if the lower bound exceeds the upper bound.
//	– ErrInvalidArgument  class sentinel for all other precondition violations.
//	– ErrNilIntegrand     if the integrand is nil.
//	– ErrNaNBound         if either bound is NaN.
//	– ErrBadTolerance     if a tolerance is zero, negative, NaN or +Inf.
//	– ErrBadMaxIter       if MaxIter < 1.
//	– ErrBadSubdivisions  if Subdivisions < 1.
//	– ErrInvalidRule      if a rule table is internally inconsistent.
package quadgk

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Integrate and IntegrateWithStats.
//
// The specific argument sentinels wrap ErrInvalidArgument, so
// errors.Is(err, ErrInvalidArgument) matches any of them while
// errors.Is(err, ErrNilIntegrand) still pins down the exact violation.
var (
	// ErrInvalidDomain indicates that the lower bound is strictly greater
	// than the upper bound. Inverted domains are rejected, not re-oriented.
	ErrInvalidDomain = errors.New("quadgk: invalid integration domain")

	// ErrInvalidArgument is the class sentinel for precondition violations
	// other than domain order.
	ErrInvalidArgument = errors.New("quadgk: invalid argument")

	// ErrInvalidRule indicates a quadrature rule whose node and weight
	// tables disagree in length. It cannot occur through the public API.
	ErrInvalidRule = errors.New("quadgk: malformed quadrature rule")

	// ErrNilIntegrand indicates that a nil integrand was passed.
	ErrNilIntegrand = fmt.Errorf("%w: integrand is nil", ErrInvalidArgument)

	// ErrNaNBound indicates that at least one integration bound is NaN.
	ErrNaNBound = fmt.Errorf("%w: integration bound is NaN", ErrInvalidArgument)

	// ErrBadTolerance indicates a tolerance that is not a positive finite number.
	ErrBadTolerance = fmt.Errorf("%w: tolerance must be positive and finite", ErrInvalidArgument)

	// ErrBadMaxIter indicates that MaxIter was set below 1.
	ErrBadMaxIter = fmt.Errorf("%w: MaxIter must be at least 1", ErrInvalidArgument)

	// ErrBadSubdivisions indicates that Subdivisions was set below 1.
	ErrBadSubdivisions = fmt.Errorf("%w: Subdivisions must be at least 1", ErrInvalidArgument)
)

// Func is a real-valued integrand. It must be defined on the interior of the
// integration domain; the integrator never evaluates the endpoints of an
// infinite domain.
type Func func(x float64) float64

// Default tolerance and iteration settings, used by DefaultOptions.
const (
	// DefaultAbsTol is the default absolute error tolerance.
	DefaultAbsTol = 1e-10

	// DefaultRelTol is the default relative error tolerance.
	DefaultRelTol = 1e-5

	// DefaultMaxIter is the default cap on evaluation rounds.
	DefaultMaxIter = 1000

	// DefaultSubdivisions is the default initial partition size.
	DefaultSubdivisions = 10
)

// Options configures a single integration run.
//
// AbsTol       – absolute error tolerance; the run converges once the summed
//
//	error estimate is ≤ max(AbsTol, RelTol·|total|). Must be > 0 and finite.
//
// RelTol       – relative error tolerance, same convergence test. Must be > 0
//
//	and finite.
//
// MaxIter      – maximum number of evaluation rounds, counting the initial
//
//	pass over the seed partition. Must be ≥ 1.
//
// Subdivisions – how many equal subintervals the domain is split into before
//
//	adaptive refinement starts. Must be ≥ 1.
type Options struct {
	AbsTol       float64 // absolute error tolerance
	RelTol       float64 // relative error tolerance
	MaxIter      int     // cap on evaluation rounds
	Subdivisions int     // initial equal partition size
}

// Option represents a functional option for configuring the integrator.
// Values are validated by Integrate, not by the setters, so an invalid
// setting surfaces as an ErrInvalidArgument-class error instead of a panic.
type Option func(*Options)

// WithAbsTolerance sets the absolute error tolerance.
func WithAbsTolerance(tol float64) Option {
	return func(o *Options) {
		o.AbsTol = tol
	}
}

// WithRelTolerance sets the relative error tolerance.
func WithRelTolerance(tol float64) Option {
	return func(o *Options) {
		o.RelTol = tol
	}
}

// WithMaxIter caps the number of evaluation rounds, including the initial
// pass. With MaxIter == 1 the result is the plain composite rule on the seed
// partition, with no adaptive refinement.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		o.MaxIter = n
	}
}

// WithSubdivisions sets the size of the initial equal partition.
func WithSubdivisions(n int) Option {
	return func(o *Options) {
		o.Subdivisions = n
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - AbsTol:       1e-10
//   - RelTol:       1e-5
//   - MaxIter:      1000
//   - Subdivisions: 10
func DefaultOptions() Options {
	return Options{
		AbsTol:       DefaultAbsTol,
		RelTol:       DefaultRelTol,
		MaxIter:      DefaultMaxIter,
		Subdivisions: DefaultSubdivisions,
	}
}

// validate checks every Options field and returns the sentinel of the first
// violation found. Order: AbsTol, RelTol, MaxIter, Subdivisions.
func (o Options) validate() error {
	if !(o.AbsTol > 0) || math.IsInf(o.AbsTol, 0) {
		return fmt.Errorf("%w: AbsTol=%g", ErrBadTolerance, o.AbsTol)
	}
	if !(o.RelTol > 0) || math.IsInf(o.RelTol, 0) {
		return fmt.Errorf("%w: RelTol=%g", ErrBadTolerance, o.RelTol)
	}
	if o.MaxIter < 1 {
		return fmt.Errorf("%w: got %d", ErrBadMaxIter, o.MaxIter)
	}
	if o.Subdivisions < 1 {
		return fmt.Errorf("%w: got %d", ErrBadSubdivisions, o.Subdivisions)
	}

	return nil
}

// Result reports the outcome of one adaptive integration run.
type Result struct {
	// Value is the integral estimate (sum of all subinterval estimates).
	Value float64

	// ErrorBound is the summed absolute error estimate at return time.
	ErrorBound float64

	// Iterations is the number of evaluation rounds performed, counting
	// the initial pass over the seed partition.
	Iterations int

	// Subintervals is the number of subintervals evaluated in the final
	// refinement round.
	Subintervals int

	// Converged reports whether ErrorBound met the tolerance
	// max(AbsTol, RelTol·|Value|). A false value means MaxIter ran out
	// or refinement stalled; Value is still the best available estimate.
	Converged bool
}
