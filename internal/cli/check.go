package cli

import (
	"fmt"
	"os"

	"github.com/coregx/coreglob"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Run a YAML file of pattern match cases",
	Long: `Run a YAML case file against the engine and report failures.

The file is a list of cases:

  - pattern: "{foo,bar-*}-baz"
    match:   ["foo-baz", "bar-x-baz"]
    nomatch: ["bar-x", "foo"]

Exits 1 when any expectation fails.
`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCase is one entry of a case file.
type checkCase struct {
	Pattern string   `yaml:"pattern"`
	Match   []string `yaml:"match"`
	NoMatch []string `yaml:"nomatch"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var cases []checkCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	failures := 0
	for _, c := range cases {
		g := coreglob.Compile(c.Pattern)
		for _, s := range c.Match {
			if !g.Match(s) {
				failures++
				fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: expected match: %q\n", c.Pattern, s)
			}
		}
		for _, s := range c.NoMatch {
			if g.Match(s) {
				failures++
				fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: expected no match: %q\n", c.Pattern, s)
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d expectation(s) failed", failures)
	}
	fmt.Fprintf(out, "ok: %d pattern(s)\n", len(cases))
	return nil
}
