package flow

import (
	"fmt"

	"github.com/katalvlaran/mcflow/network"
)

// SuccessiveShortestPaths pushes flow from net.Source to net.Sink along
// cheapest augmenting paths until the desired total is reached or the sink
// becomes unreachable in the residual graph.
//
// Steps, repeated while net.Flow < DesiredFlow:
//  1. Check opts.Ctx for cancellation.
//  2. ShortestPaths over the current residual graph.
//  3. If dist[sink] is Infinity, stop: no augmenting path is left. This is
//     the normal end of a maximum-flow request, not an error.
//  4. Bottleneck: walk pred from sink to source taking the minimum of
//     DesiredFlow-net.Flow (saturating at Unbounded) and every residual
//     capacity on the chain.
//  5. Augment: Capacity[u][v] -= b, Capacity[v][u] += b along the chain.
//  6. net.Flow += b, Cost += b·dist[sink].
//
// Each augmentation either reaches the desired flow or saturates at least one
// arc, so the loop terminates. Because every path is a shortest one, the flow
// after each step is of minimum cost for its magnitude, and stopping early
// still yields an optimal flow of the requested size.
//
// DesiredFlow is a total measured by net.Flow, which Build seeds from the
// input arcs. Re-solving an already solved network with the same target
// performs no augmentation, and a second call on the same network continues
// where the first stopped.
//
// net.Flow is negative when arcs into the source already carry more flow than
// arcs out of it; augmenting paths may then cancel that inflow.
//
// Only net.Capacity and net.Flow are mutated. On error the partial Result is
// returned with the error, and net reflects the augmentations completed so far.
func SuccessiveShortestPaths(net *network.Network, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	cfg := resolve(opts)

	res := &Result{}
	for net.Flow < cfg.DesiredFlow {
		if err := cfg.Ctx.Err(); err != nil {
			res.Flow = net.Flow
			return res, err
		}

		dist, pred, err := ShortestPaths(net, cfg.Worklist)
		if err != nil {
			res.Flow = net.Flow
			return res, err
		}
		if dist[net.Sink] == Infinity {
			break
		}

		delta := bottleneck(net, pred, remaining(cfg.DesiredFlow, net.Flow))
		augment(net, pred, delta)

		net.Flow += delta
		res.Cost += delta * dist[net.Sink]
		res.Augmentations++

		if cfg.Logger != nil {
			cfg.Logger.Debug("augmenting path",
				"path", pathTo(net, pred),
				"flow", delta,
				"unit_cost", dist[net.Sink],
				"total", net.Flow,
			)
		}
	}
	res.Flow = net.Flow

	return res, nil
}

// Solve runs the whole pipeline on dense integer node ids: build the network,
// run SuccessiveShortestPaths, and read the realized flow back into a copy of
// edges. Node 0 is the source and the largest To index the sink.
//
// Solve is atomic: it either returns a complete result or an error, and never
// modifies edges.
func Solve(edges []network.Edge, opts ...Option) ([]network.Edge, error) {
	cfg := resolve(opts)

	net, err := network.Build(edges, cfg.BuildOptions...)
	if err != nil {
		return nil, err
	}
	if _, err = SuccessiveShortestPaths(net, opts...); err != nil {
		return nil, fmt.Errorf("flow: solve: %w", err)
	}

	return net.Readback(edges), nil
}
