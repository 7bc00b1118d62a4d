// Package cli implements the quadra command tree.
//
// quadra evaluates one-dimensional integrals of expression-defined
// integrands from the shell:
//
//	quadra gk "exp(-x*x)" -a=-inf -b=+inf
//	quadra gh "x*x"
//
// Global flags: --config points at a TOML file with default tolerances,
// --verbose enables debug diagnostics on stderr. Results print on stdout
// with 12 significant digits.
package cli

import (
	"os"

	logging "github.com/op/go-logging"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("quadra")

// logFormat keeps diagnostics on one stderr line per event.
const logFormat = "%{time:15:04:05.000} [%{level:.4s}] %{message}"

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "quadra",
	Short: "Deterministic one-dimensional quadrature",
	Long: `quadra numerically integrates expressions of x over finite or infinite
domains, using adaptive Gauss-Kronrod quadrature (gk) or a fixed 64-point
Gauss-Hermite rule (gh).`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

// setup configures logging and loads the optional TOML defaults before any
// subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stderr, "", 0),
		logging.MustStringFormatter(logFormat),
	))
	if flagVerbose {
		backend.SetLevel(logging.DEBUG, "")
	} else {
		backend.SetLevel(logging.WARNING, "")
	}
	logging.SetBackend(backend)

	return loadConfig(flagConfig)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"TOML config file with default tolerances (default $HOME/.quadra.toml if present)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug diagnostics on stderr")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
