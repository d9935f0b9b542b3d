package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	registry = defaultChecks()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cicheck",
	Short: "Run the project's CI checks and summarize the results",
	Long: `cicheck runs a fixed list of CI checks in order, streams each command's
output, prints a results table and exits 1 if any check failed.`,
	Version: Version,
	Args:    cobra.NoArgs,
	RunE:    runRoot,
}
