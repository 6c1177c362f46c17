package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mcflow"
	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/naming"
	"github.com/katalvlaran/mcflow/netfile"
	"github.com/katalvlaran/mcflow/network"
)

type solveOptions struct {
	desired      int64
	desiredSet   bool
	source       string
	sink         string
	priority     bool
	check        bool
	outputFormat string
	jobs         int
}

func newSolveCmd() *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Compute minimum-cost flows for network documents",
		Long: `Solve reads each network document, computes a minimum-cost flow from the
source to the sink and prints the document with every edge's flow filled in.
Files are solved concurrently; results are printed in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.desiredSet = cmd.Flags().Changed("desired")
			return runSolve(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	flags := cmd.Flags()
	flags.Int64VarP(&opts.desired, "desired", "d", 0, "desired total flow (default: the document's desired_flow, else the maximum)")
	flags.StringVar(&opts.source, "source", "", "source node name (overrides the document)")
	flags.StringVar(&opts.sink, "sink", "", "sink node name (overrides the document)")
	flags.BoolVar(&opts.priority, "priority", false, "use a priority worklist for shortest paths")
	flags.BoolVar(&opts.check, "check", false, "also compute the maximum flow and warn when the desired flow exceeds it")
	flags.StringVarP(&opts.outputFormat, "output-format", "o", "", "json, toml or yaml (default: the input format)")
	flags.IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "number of files solved concurrently")

	return cmd
}

// solveResult is the outcome of one document.
type solveResult struct {
	format netfile.Format
	doc    *netfile.Document
}

func runSolve(ctx context.Context, out io.Writer, paths []string, opts solveOptions) error {
	logger := loggerFromContext(ctx)

	if opts.desiredSet && opts.desired < 0 {
		return fmt.Errorf("--desired must be non-negative, got %d", opts.desired)
	}
	if opts.jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", opts.jobs)
	}
	var outFormat netfile.Format
	if opts.outputFormat != "" {
		f, err := netfile.ParseFormat(opts.outputFormat)
		if err != nil {
			return err
		}
		outFormat = f
	}

	results := make([]solveResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res, err := solveFile(gctx, logger, path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		format := res.format
		if outFormat != "" {
			format = outFormat
		}
		if err := netfile.Encode(out, format, res.doc); err != nil {
			return err
		}
	}

	return nil
}

func solveFile(ctx context.Context, logger *log.Logger, path string, opts solveOptions) (solveResult, error) {
	p := newProgress(logger)

	format, err := netfile.FormatFromPath(path)
	if err != nil {
		return solveResult{}, err
	}
	doc, err := netfile.Load(path)
	if err != nil {
		return solveResult{}, err
	}
	if len(doc.Edges) == 0 {
		return solveResult{}, fmt.Errorf("%s: %w", path, errNoEdges)
	}

	if opts.source != "" {
		doc.Source = opts.source
	}
	if opts.sink != "" {
		doc.Sink = opts.sink
	}
	source, sink := doc.Sentinels()
	if source == sink {
		return solveResult{}, fmt.Errorf("%s: %w", path, naming.ErrSameSentinel)
	}

	flowOpts := []flow.Option{
		flow.WithContext(ctx),
		flow.WithLogger(logger.With("file", path)),
	}
	desired := flow.Unbounded
	switch {
	case opts.desiredSet:
		desired = opts.desired
	case doc.DesiredFlow != nil:
		desired = *doc.DesiredFlow
	}
	if desired != flow.Unbounded {
		flowOpts = append(flowOpts, flow.WithDesiredFlow(desired))
	}
	if opts.priority {
		flowOpts = append(flowOpts, flow.WithWorklist(flow.WorklistPriority))
	}

	arcs := doc.Arcs()
	solved, err := mcflow.Solve(arcs,
		mcflow.WithSentinels(source, sink),
		mcflow.WithFlowOptions(flowOpts...),
	)
	if err != nil {
		return solveResult{}, fmt.Errorf("%s: %w", path, err)
	}
	total := flow.TotalFlow(solved, source)

	if opts.check {
		maxFlow, err := maxFlowOf(ctx, arcs, source, sink)
		if err != nil {
			return solveResult{}, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("maximum flow", "file", path, "max", maxFlow)
		if desired != flow.Unbounded && desired > maxFlow {
			logger.Warn("desired flow exceeds maximum flow", "file", path, "desired", desired, "max", maxFlow)
		}
	}

	res := netfile.FromArcs(solved, doc.Source, doc.Sink)
	res.DesiredFlow = doc.DesiredFlow
	p.done(fmt.Sprintf("Solved %s: flow %d, cost %d", path, total, flow.TotalCost(solved)))

	return solveResult{format: format, doc: res}, nil
}

// maxFlowOf returns the maximum flow magnitude of the named network.
func maxFlowOf(ctx context.Context, arcs []network.Arc[string], source, sink string) (int64, error) {
	dense, _, err := naming.Rename(arcs, source, sink)
	if err != nil {
		return 0, err
	}
	net, err := network.Build(dense)
	if err != nil {
		return 0, err
	}

	return flow.MaxFlow(net, flow.WithContext(ctx))
}
