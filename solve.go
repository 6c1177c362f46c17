package mcflow

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/naming"
	"github.com/katalvlaran/mcflow/network"
)

// Solve computes a minimum-cost flow on a network with string node names.
// The result has one arc per input arc, in input order, with Flow set.
// edges is not modified.
func Solve(edges []network.Arc[string], opts ...Option) ([]network.Arc[string], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return SolveKeyed(edges, cfg.Source, cfg.Sink, cfg.FlowOptions...)
}

// SolveKeyed is Solve for any ordered node type and explicit sentinels.
func SolveKeyed[K cmp.Ordered](edges []network.Arc[K], source, sink K, opts ...flow.Option) ([]network.Arc[K], error) {
	if len(edges) == 0 {
		return nil, network.ErrEmptyNetwork
	}
	if err := checkSentinels(edges, source, sink); err != nil {
		return nil, err
	}

	dense, table, err := naming.Rename(edges, source, sink)
	if err != nil {
		return nil, err
	}
	solved, err := flow.Solve(dense, opts...)
	if err != nil {
		return nil, err
	}

	return naming.RenameBack(solved, table)
}

// SolveNumeric solves a network given with dense integer ids; see flow.Solve.
func SolveNumeric(edges []network.Edge, opts ...flow.Option) ([]network.Edge, error) {
	return flow.Solve(edges, opts...)
}

func checkSentinels[K cmp.Ordered](edges []network.Arc[K], source, sink K) error {
	var hasSource, hasSink bool
	for _, e := range edges {
		hasSource = hasSource || e.From == source || e.To == source
		hasSink = hasSink || e.From == sink || e.To == sink
	}
	if !hasSource {
		return fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	if !hasSink {
		return fmt.Errorf("%w: %v", ErrSinkNotFound, sink)
	}

	return nil
}
