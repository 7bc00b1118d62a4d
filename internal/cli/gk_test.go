package cli

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadra/quadgk"
)

// resetGKFlags restores the gk flag set to its defaults, including the
// per-flag Changed markers that gkOptions consults.
func resetGKFlags(t *testing.T) {
	t.Helper()
	for _, name := range []string{"lower", "upper", "abs-tol", "rel-tol", "max-iter", "subdivisions"} {
		f := gkCmd.Flags().Lookup(name)
		require.NotNil(t, f, "flag %s should exist", name)
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
}

func TestGKCmd_Use(t *testing.T) {
	assert.Equal(t, "gk [expression]", gkCmd.Use)
}

func TestGKCmd_Short(t *testing.T) {
	assert.Equal(t, "Adaptive Gauss-Kronrod integration of an expression in x", gkCmd.Short)
}

func TestGKCmd_HasBoundFlags(t *testing.T) {
	lower := gkCmd.Flags().Lookup("lower")
	require.NotNil(t, lower, "lower flag should exist")
	assert.Equal(t, "a", lower.Shorthand)
	assert.Equal(t, "0", lower.DefValue)

	upper := gkCmd.Flags().Lookup("upper")
	require.NotNil(t, upper, "upper flag should exist")
	assert.Equal(t, "b", upper.Shorthand)
	assert.Equal(t, "1", upper.DefValue)
}

func TestGKCmd_HasToleranceFlags(t *testing.T) {
	absTol := gkCmd.Flags().Lookup("abs-tol")
	require.NotNil(t, absTol, "abs-tol flag should exist")
	assert.Equal(t, "1e-10", absTol.DefValue)

	relTol := gkCmd.Flags().Lookup("rel-tol")
	require.NotNil(t, relTol, "rel-tol flag should exist")
	assert.Equal(t, "1e-05", relTol.DefValue)

	maxIter := gkCmd.Flags().Lookup("max-iter")
	require.NotNil(t, maxIter, "max-iter flag should exist")
	assert.Equal(t, "1000", maxIter.DefValue)

	subdivisions := gkCmd.Flags().Lookup("subdivisions")
	require.NotNil(t, subdivisions, "subdivisions flag should exist")
	assert.Equal(t, "10", subdivisions.DefValue)
}

func TestGKCmd_RequiresExactlyOneArg(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"gk"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestGKCmd_ExecutesWithDefaultBounds(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"gk", "3*x*x"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetGKFlags(t)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "1\n", buf.String(), "integral of 3x^2 over the default [0, 1]")
}

func TestGKCmd_ExecutesWithExplicitBounds(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"gk", "cos(x)", "-a", "0", "-b", "1", "--abs-tol", "1e-13", "--rel-tol", "1e-12"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetGKFlags(t)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "0.8414709848", "integral of cos over [0, 1] is sin(1)")
}

func TestGKCmd_ExecutesOnInfiniteDomain(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"gk", "exp(-x*x)", "-a=-inf", "-b=+inf", "--abs-tol", "1e-13", "--rel-tol", "1e-12"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetGKFlags(t)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "1.7724538509", "Gaussian integral over the real line is sqrt(pi)")
}

func TestGKCmd_RejectsUnparsableExpression(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"gk", "x*("})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestGKCmd_RejectsUnknownVariable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"gk", "x + y"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"y"`)
}

func TestGKCmd_RejectsUnparsableBound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"gk", "x", "-a", "zero"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetGKFlags(t)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `bound "zero"`)
}

func TestGKCmd_RejectsInvertedDomain(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"gk", "x", "-a", "2", "-b", "1"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetGKFlags(t)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, quadgk.ErrInvalidDomain)
}

func TestGKCmd_RejectsBadTolerance(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"gk", "x", "--abs-tol", "0"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetGKFlags(t)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, quadgk.ErrBadTolerance)
}

func TestParseBound(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "Integer literal", input: "2", expected: 2},
		{name: "Negative float", input: "-0.5", expected: -0.5},
		{name: "Scientific notation", input: "1e3", expected: 1000},
		{name: "Positive infinity", input: "inf", expected: math.Inf(1)},
		{name: "Signed positive infinity", input: "+inf", expected: math.Inf(1)},
		{name: "Negative infinity", input: "-inf", expected: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseBound(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParseBound_Invalid(t *testing.T) {
	_, err := parseBound("half")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `bound "half"`)
}
