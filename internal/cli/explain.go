package cli

import (
	"fmt"

	"github.com/coregx/coreglob"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain PATTERN",
	Short: "Show how a pattern compiles",
	Long: `Print the compiled form of a glob pattern: its canonical rendering, the
matching strategy selected for it, and the instruction listing.

Example:
  coreglob explain '{foo,bar-*}-baz'
`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	g := coreglob.Compile(args[0])
	fmt.Fprint(cmd.OutOrStdout(), g.Explain())
	return nil
}
