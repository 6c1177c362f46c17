// Package cli implements the mcflow command-line interface.
//
// # Commands
//
//   - solve:    solve one or more network documents (JSON, TOML or YAML)
//   - match:    solve a bipartite matching document
//   - generate: write a synthetic network document
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// prints every augmenting path found by the solver. Loggers are passed
// through context.Context. Result documents go to stdout, logs to stderr.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is injected at build time via -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

var (
	errNoEdges = errors.New("document has no edges")
	errNoPairs = errors.New("document has no pairs")
)

// Execute runs the mcflow CLI with the process streams.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree writing results to stdout and logs to
// stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "mcflow",
		Short:         "mcflow solves minimum-cost flow problems",
		Long:          `mcflow computes minimum-cost flows with successive shortest paths on networks described in JSON, TOML or YAML documents.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newMatchCmd())
	root.AddCommand(newGenerateCmd())

	return root
}
