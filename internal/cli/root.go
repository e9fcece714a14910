// Package cli implements the coreglob command-line tool.
package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrNoneSelected is returned by the match command when no candidate was
// selected, so main can exit 1 without printing an error.
var ErrNoneSelected = errors.New("no candidates selected")

var rootCmd = &cobra.Command{
	Use:   "coreglob",
	Short: "Compile and evaluate glob patterns",
	Long: `coreglob compiles glob patterns (*, ?, [sets], {alternatives}, \escapes)
into instruction programs and matches candidate strings against them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
