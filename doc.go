// Package quadra is a deterministic toolkit for one-dimensional numerical
// integration — adaptive Gauss–Kronrod quadrature over finite and infinite
// domains, plus a fixed Gauss–Hermite rule for Gaussian-weighted integrals.
//
// 🚀 What is quadra?
//
//	A small, reproducible quadrature library that brings together:
//		• Adaptive Gauss–Kronrod: 21-point rule on finite domains
//		• Infinite domains: 15-point rule under a rational change of variable
//		• Error control: absolute and relative tolerances, iteration caps
//		• Gauss–Hermite: fixed 64-point rule for ∫ exp(-x²)·f(x) dx
//		• A CLI: integrate shell-quoted expressions of x without writing Go
//
// ✨ Why choose quadra?
//
//   - Deterministic – same inputs, bit-identical results, no randomness
//   - Honest errors – per-subinterval error bounds, best-effort on hard cases
//   - Beginner-friendly – two entry points, functional options, clear naming
//   - No surprises – explicit sentinel errors for every precondition
//
// Everything is organized under a handful of packages:
//
//	quadgk/     — adaptive Gauss–Kronrod integrator (the workhorse)
//	quadgh/     — fixed 64-point Gauss–Hermite rule
//	cmd/quadra/ — the quadra command-line tool
//
// Quick example:
//
//	v, err := quadgk.Integrate(math.Cos, 0, math.Pi/2)
//	// v ≈ 1, err == nil
//
// Or from the shell:
//
//	quadra gk "exp(-x*x)" -a=-inf -b=+inf   # ≈ √π
//
// Dive into the package docs for tolerance semantics, domain handling and
// convergence reporting.
//
//	go get github.com/katalvlaran/quadra
package quadra
