package cli

import (
	"github.com/spf13/cobra"
)

// version is stamped at release time via
// -ldflags "-X github.com/katalvlaran/quadra/internal/cli.version=v1.2.3".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("quadra version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
