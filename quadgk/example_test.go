package quadgk_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/quadgk"
)

// ExampleIntegrate demonstrates the default finite-domain pipeline.
//
// Scenario:
//
//	∫₀^{π/2} cos(x) dx = sin(π/2) = 1
//
// The 21-point rule captures cos on each seed panel to near machine
// accuracy, so the run converges on the first round.
func ExampleIntegrate() {
	v, err := quadgk.Integrate(math.Cos, 0, math.Pi/2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.6f\n", v)
	// Output:
	// 1.000000
}

// ExampleIntegrate_infiniteDomain demonstrates integration over the whole
// real line.
//
// Scenario:
//
//	∫_{-∞}^{+∞} e^(-x²) dx = √π ≈ 1.772454
//
// The domain is substituted onto (-1, 1) and handled by the 15-point rule;
// tightening RelTol drives the subdivision deeper than the defaults would.
func ExampleIntegrate_infiniteDomain() {
	gaussian := func(x float64) float64 { return math.Exp(-x * x) }

	v, err := quadgk.Integrate(gaussian, math.Inf(-1), math.Inf(1),
		quadgk.WithRelTolerance(1e-12),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.6f\n", v)
	// Output:
	// 1.772454
}

// ExampleIntegrateWithStats demonstrates run introspection: the error bound
// and convergence flag alongside the value.
func ExampleIntegrateWithStats() {
	res, err := quadgk.IntegrateWithStats(func(x float64) float64 { return x * x }, 0, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%.6f converged=%t\n", res.Value, res.Converged)
	// Output:
	// value=0.333333 converged=true
}
