// Package expr compiles command-line expression strings into integrand
// functions. Expressions use govaluate syntax over the variable x, with the
// constants pi and e and a small set of math helpers predefined:
//
//	sin, cos, tan, exp, log, sqrt, abs, pow
//
// Examples of accepted expressions:
//
//	"x*x"
//	"exp(-x)"
//	"sin(pi*x) / (1 + x*x)"
//	"pow(x, 4) * exp(-x*x)"
package expr

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// functions lists the math helpers callable inside expressions.
var functions = map[string]govaluate.ExpressionFunction{
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"exp":  unary(math.Exp),
	"log":  unary(math.Log),
	"sqrt": unary(math.Sqrt),
	"abs":  unary(math.Abs),
	"pow":  binary(math.Pow),
}

// Compile parses src into a plain integrand func. Parse failures and
// references to variables other than x (and the constants pi, e) surface
// here; evaluation failures at integration time yield NaN, which the
// quadrature packages propagate rather than mask.
func Compile(src string) (func(float64) float64, error) {
	ee, err := govaluate.NewEvaluableExpressionWithFunctions(src, functions)
	if err != nil {
		return nil, fmt.Errorf("expr: parse %q: %w", src, err)
	}

	for _, v := range ee.Vars() {
		if v != "x" && v != "pi" && v != "e" {
			return nil, fmt.Errorf("expr: unknown variable %q (only x, pi, e are defined)", v)
		}
	}

	return func(x float64) float64 {
		out, evalErr := ee.Evaluate(map[string]interface{}{
			"x":  x,
			"pi": math.Pi,
			"e":  math.E,
		})
		if evalErr != nil {
			return math.NaN()
		}
		v, ok := out.(float64)
		if !ok {
			return math.NaN()
		}

		return v
	}, nil
}

// unary adapts a one-argument math function to the govaluate calling
// convention with an arity and type check.
func unary(f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expr: want 1 argument, got %d", len(args))
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("expr: non-numeric argument %v", args[0])
		}

		return f(x), nil
	}
}

// binary adapts a two-argument math function likewise.
func binary(f func(a, b float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("expr: want 2 arguments, got %d", len(args))
		}
		a, okA := args[0].(float64)
		b, okB := args[1].(float64)
		if !okA || !okB {
			return nil, fmt.Errorf("expr: non-numeric arguments %v, %v", args[0], args[1])
		}

		return f(a, b), nil
	}
}
