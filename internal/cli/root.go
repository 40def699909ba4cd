// Package cli wires the rex commands. Each command lives in its own file
// and registers itself against rootCmd in init().
package cli

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the bare "rex" invocation.
var rootCmd = &cobra.Command{
	Use:   "rex",
	Short: "Compose regular expressions from tree descriptions",
	Long: `rex renders composition trees to regular-expression strings.

A tree is described in YAML — typed nodes for literals, character sets,
sequences, alternations, groups, repetitions and anchors — and rendered
to a single pattern valid in both Go's regexp (RE2) and PCRE. rex never
matches or executes anything; it only produces pattern text.`,
	SilenceUsage: true,
}

// Execute runs the root command and reports its error, leaving the exit
// code to main.
func Execute() error {
	return rootCmd.Execute()
}
