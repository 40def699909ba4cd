package cli

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/rexlib/rex/internal/treefile"
	"github.com/rexlib/rex/pattern"
)

var checkCompile bool

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a YAML tree description to a pattern string",
	Long: `Render reads a composition tree from a YAML file (or stdin when the
argument is "-" or absent), renders it, and prints the pattern on stdout.

A structurally invalid tree fails with the construction error named on
stderr and a non-zero exit code.

Examples:
  rex render pattern.yaml
  cat pattern.yaml | rex render
  rex render pattern.yaml --check`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().BoolVar(&checkCompile, "check", false,
		"also compile the result with Go's regexp to verify it")
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	node, err := treefile.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to build tree: %w", err)
	}

	p := pattern.Render(node)

	if checkCompile {
		// The one place rex touches a regex engine, and only on request.
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("rendered pattern failed to compile: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), p)

	return nil
}

// readInput resolves the file argument; "-" or no argument means stdin.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}
