package cli

import (
	"bufio"
	"fmt"

	"github.com/coregx/coreglob"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match PATTERN [CANDIDATE...]",
	Short: "Filter candidates through a glob pattern",
	Long: `Match candidates against a glob pattern and print the ones that match.
Candidates are taken from the arguments, or from stdin (one per line) when
none are given. Exits 1 when nothing was selected.

Examples:
  coreglob match '*.go' main.go main.rs        # prints main.go
  ls | coreglob match '{foo,bar-*}-baz'        # filter a listing
  coreglob match -q 'v[0-9].*' "$tag"          # exit code only
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

var (
	matchInvert bool
	matchQuiet  bool
)

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().BoolVarP(&matchInvert, "invert", "v", false, "Select candidates that do not match")
	matchCmd.Flags().BoolVarP(&matchQuiet, "quiet", "q", false, "Suppress output, report via exit code only")
}

func runMatch(cmd *cobra.Command, args []string) error {
	g := coreglob.Compile(args[0])

	selected := 0
	emit := func(s string) {
		if g.Match(s) == matchInvert {
			return
		}
		selected++
		if !matchQuiet {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
	}

	if len(args) > 1 {
		for _, s := range args[1:] {
			emit(s)
		}
	} else {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			emit(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading candidates: %w", err)
		}
	}

	if selected == 0 {
		return ErrNoneSelected
	}
	return nil
}
