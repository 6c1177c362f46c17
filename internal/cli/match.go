package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/matching"
	"github.com/katalvlaran/mcflow/netfile"
)

type matchOptions struct {
	maxPairs     int64
	maxPairsSet  bool
	outputFormat string
}

func newMatchCmd() *cobra.Command {
	var opts matchOptions

	cmd := &cobra.Command{
		Use:   "match FILE",
		Short: "Compute a minimum-weight bipartite matching",
		Long: `Match reads a document of candidate pairs and prints the pairs of a
maximum-cardinality matching with minimum total weight.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.maxPairsSet = cmd.Flags().Changed("max-pairs")
			return runMatch(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.Int64VarP(&opts.maxPairs, "max-pairs", "k", 0, "match at most this many pairs (default: the document's desired_flow, else as many as possible)")
	flags.StringVarP(&opts.outputFormat, "output-format", "o", "", "json, toml or yaml (default: the input format)")

	return cmd
}

func runMatch(ctx context.Context, out io.Writer, path string, opts matchOptions) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	if opts.maxPairsSet && opts.maxPairs < 0 {
		return fmt.Errorf("--max-pairs must be non-negative, got %d", opts.maxPairs)
	}
	format, err := netfile.FormatFromPath(path)
	if err != nil {
		return err
	}
	if opts.outputFormat != "" {
		if format, err = netfile.ParseFormat(opts.outputFormat); err != nil {
			return err
		}
	}

	doc, err := netfile.Load(path)
	if err != nil {
		return err
	}
	if len(doc.Pairs) == 0 {
		return fmt.Errorf("%s: %w", path, errNoPairs)
	}

	flowOpts := []flow.Option{
		flow.WithContext(ctx),
		flow.WithLogger(logger.With("file", path)),
	}
	switch {
	case opts.maxPairsSet:
		flowOpts = append(flowOpts, flow.WithDesiredFlow(opts.maxPairs))
	case doc.DesiredFlow != nil:
		flowOpts = append(flowOpts, flow.WithDesiredFlow(*doc.DesiredFlow))
	}

	matched, err := matching.MinWeight(doc.MatchPairs(), flowOpts...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = netfile.Encode(out, format, netfile.FromPairs(matched)); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Matched %s: %d pairs, weight %d", path, len(matched), matching.Weight(matched)))

	return nil
}
