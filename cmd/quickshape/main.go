package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quickshape/quickshape/internal/cli/commands"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quickshape",
		Short: "Generate PropTypes validators from JSON samples",
		Long: `quickshape infers a structural type model from JSON sample files and
emits a JavaScript PropTypes validator module mirroring the inferred types.`,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewGenerateCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
