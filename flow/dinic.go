package flow

import (
	"context"

	"github.com/katalvlaran/mcflow/network"
)

// MaxFlow computes the maximum flow magnitude from net.Source to net.Sink
// with Dinic's algorithm (level graph + blocking flows), ignoring costs.
//
// It works on a copy of the residual capacities, so net is left untouched and
// can still be handed to SuccessiveShortestPaths. The result includes
// net.Flow. Callers use it to check whether a desired flow is feasible
// before paying for a min-cost solve.
//
// Steps:
//  1. Clone net.Capacity.
//  2. Repeat until the sink is unreachable:
//     a. Check ctx for cancellation.
//     b. BFS from the source over positive residual arcs to assign levels.
//     c. If the sink has no level, stop.
//     d. Keep only arcs u→v with level[v] == level[u]+1.
//     e. Push blocking flow by DFS with per-node iterators.
//
// Only Ctx is read from opts.
//
// Complexity:
//
//	Time:   O(V²·E) in general; O(E·√V) on unit-capacity networks.
//	Memory: O(V²) for the copied matrix, O(V + E) for levels and iterators.
func MaxFlow(net *network.Network, opts ...Option) (int64, error) {
	if net == nil {
		return 0, ErrNilNetwork
	}
	cfg := resolve(opts)
	ctx := cfg.Ctx

	capacity := net.CloneCapacity()
	n := net.Nodes
	total := net.Flow

	level := make([]int, n)
	next := make([][]int, n)
	iter := make([]int, n)
	queue := make([]int, 0, n)
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		// BFS levels
		for v := range level {
			level[v] = -1
		}
		level[net.Source] = 0
		queue = append(queue[:0], net.Source)
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, v := range net.Adjacency[u] {
				if capacity[u][v] > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[net.Sink] < 0 {
			break
		}

		// level graph
		for u := 0; u < n; u++ {
			next[u] = next[u][:0]
			iter[u] = 0
			for _, v := range net.Adjacency[u] {
				if capacity[u][v] > 0 && level[v] == level[u]+1 {
					next[u] = append(next[u], v)
				}
			}
		}

		// blocking flow
		for {
			if err := ctx.Err(); err != nil {
				return total, err
			}
			pushed := dinicPush(ctx, capacity, next, iter, net.Source, net.Sink, Unbounded)
			if pushed == 0 {
				break
			}
			total += pushed
		}
	}

	return total, nil
}

// dinicPush sends up to available units from u to sink along the level graph
// and returns the amount actually sent.
func dinicPush(
	ctx context.Context,
	capacity [][]int64,
	next [][]int,
	iter []int,
	u, sink int,
	available int64,
) int64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for ; iter[u] < len(next[u]); iter[u]++ {
		v := next[u][iter[u]]
		capUV := capacity[u][v]
		if capUV <= 0 {
			continue
		}
		send := available
		if capUV < send {
			send = capUV
		}
		if pushed := dinicPush(ctx, capacity, next, iter, v, sink, send); pushed > 0 {
			capacity[u][v] -= pushed
			capacity[v][u] += pushed

			return pushed
		}
	}

	return 0
}
