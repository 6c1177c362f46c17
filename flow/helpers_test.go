package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcflow/network"
)

// assignmentNetwork is the 3 senders × 3 receivers network: source 0,
// senders 1..3, receivers 4..6, sink 7, unit capacities and the cost matrix
//
//	[[2 4 6]
//	 [6 2 4]
//	 [4 6 2]]
func assignmentNetwork() []network.Edge {
	costs := [3][3]int64{{2, 4, 6}, {6, 2, 4}, {4, 6, 2}}
	var edges []network.Edge
	for s := 1; s <= 3; s++ {
		edges = append(edges, network.Edge{From: 0, To: s, Capacity: 1})
	}
	for s := 1; s <= 3; s++ {
		for r := 4; r <= 6; r++ {
			edges = append(edges, network.Edge{From: s, To: r, Capacity: 1, Cost: costs[s-1][r-4]})
		}
	}
	for r := 4; r <= 6; r++ {
		edges = append(edges, network.Edge{From: r, To: 7, Capacity: 1})
	}

	return edges
}

// diamondNetwork forces the second augmenting path through a reverse arc:
//
//	0→1 (1,$1)  0→2 (1,$5)  1→2 (1,$1)  1→3 (1,$5)  2→3 (1,$1)
func diamondNetwork() []network.Edge {
	return []network.Edge{
		{From: 0, To: 1, Capacity: 1, Cost: 1},
		{From: 0, To: 2, Capacity: 1, Cost: 5},
		{From: 1, To: 2, Capacity: 1, Cost: 1},
		{From: 1, To: 3, Capacity: 1, Cost: 5},
		{From: 2, To: 3, Capacity: 1, Cost: 1},
	}
}

// requireFeasible asserts capacity respect on every arc and flow
// conservation on every node other than the source (0) and the sink.
func requireFeasible(t *testing.T, edges []network.Edge) {
	t.Helper()

	sink := 0
	for _, e := range edges {
		if e.To > sink {
			sink = e.To
		}
	}
	balance := make([]int64, sink+1)
	for _, e := range edges {
		require.GreaterOrEqual(t, e.Flow, int64(0), "edge %d→%d", e.From, e.To)
		require.LessOrEqual(t, e.Flow, e.Capacity, "edge %d→%d", e.From, e.To)
		balance[e.From] -= e.Flow
		balance[e.To] += e.Flow
	}
	for v := 1; v < sink; v++ {
		require.Zero(t, balance[v], "conservation at node %d", v)
	}
}

// randomDAG returns a network on 3..6 nodes whose arcs all run u→v with u<v,
// so it has no cycles and no antiparallel pairs. The chain i→i+1 is always
// present to keep node ids contiguous; at most 9 arcs are generated so that
// bruteForce stays cheap.
func randomDAG(r *rand.Rand) []network.Edge {
	n := 3 + r.Intn(4)
	seen := make(map[[2]int]bool)
	var edges []network.Edge
	add := func(u, v int) {
		if seen[[2]int{u, v}] {
			return
		}
		seen[[2]int{u, v}] = true
		edges = append(edges, network.Edge{
			From:     u,
			To:       v,
			Capacity: int64(r.Intn(3)),
			Cost:     int64(r.Intn(6)),
		})
	}
	for u := 0; u+1 < n; u++ {
		add(u, u+1)
	}
	for tries := 0; tries < 8 && len(edges) < 9; tries++ {
		u := r.Intn(n - 1)
		v := u + 1 + r.Intn(n-1-u)
		add(u, v)
	}

	return edges
}

// bruteOptimum holds the cheapest cost for every feasible flow magnitude.
type bruteOptimum struct {
	best map[int64]int64
	max  int64
}

// bruteForce enumerates every integral arc-flow assignment of edges,
// keeps the feasible ones and records the cheapest cost per magnitude.
func bruteForce(edges []network.Edge) bruteOptimum {
	sink := 0
	for _, e := range edges {
		if e.To > sink {
			sink = e.To
		}
	}

	out := bruteOptimum{best: make(map[int64]int64)}
	flows := make([]int64, len(edges))
	balance := make([]int64, sink+1)

	var rec func(i int)
	rec = func(i int) {
		if i < len(edges) {
			for f := int64(0); f <= edges[i].Capacity; f++ {
				flows[i] = f
				rec(i + 1)
			}
			return
		}

		for v := range balance {
			balance[v] = 0
		}
		var cost int64
		for k, e := range edges {
			balance[e.From] -= flows[k]
			balance[e.To] += flows[k]
			cost += e.Cost * flows[k]
		}
		for v := 1; v < sink; v++ {
			if balance[v] != 0 {
				return
			}
		}
		magnitude := -balance[0]
		if c, ok := out.best[magnitude]; !ok || cost < c {
			out.best[magnitude] = cost
		}
		if magnitude > out.max {
			out.max = magnitude
		}
	}
	rec(0)

	return out
}
