package network

import "fmt"

// Build converts edges into the dense residual representation.
//
// Steps:
//  1. Resolve options; reject an empty list.
//  2. Optionally Validate the list (default on).
//  3. Infer n = max To + 1, check every endpoint lies in [0, n).
//  4. Allocate n×n Cost and Capacity matrices and n adjacency lists.
//  5. For each arc (from, to, capacity, cost, flow):
//     Adjacency[from] += to, Adjacency[to] += from,
//     Cost[from][to] = cost,  Cost[to][from] = -cost,
//     Capacity[from][to] = capacity - flow, Capacity[to][from] = flow.
//
// The input slice is never modified.
//
// Complexity: O(n² + E) time and memory.
func Build(edges []Edge, opts ...Option) (*Network, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(edges) == 0 {
		return nil, ErrEmptyNetwork
	}
	if cfg.Validate {
		if err := Validate(edges); err != nil {
			return nil, err
		}
	}

	sink, err := inferSink(edges)
	if err != nil {
		return nil, err
	}
	net := newNetwork(sink + 1)

	for _, e := range edges {
		net.Adjacency[e.From] = append(net.Adjacency[e.From], e.To)
		net.Adjacency[e.To] = append(net.Adjacency[e.To], e.From)
		net.Cost[e.From][e.To] = e.Cost
		net.Cost[e.To][e.From] = -e.Cost
		net.Capacity[e.From][e.To] = e.Capacity - e.Flow
		net.Capacity[e.To][e.From] = e.Flow

		switch net.Source {
		case e.From:
			net.Flow += e.Flow
		case e.To:
			net.Flow -= e.Flow
		}
	}

	return net, nil
}

// Readback returns a copy of edges with Flow set to the flow realized on each
// arc, read from the reverse residual capacity Capacity[To][From].
// edges must be the list the network was built from.
func (n *Network) Readback(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	for i, e := range edges {
		e.Flow = n.Capacity[e.To][e.From]
		out[i] = e
	}

	return out
}

// Residual returns the residual capacity of u→v, or 0 when either index is
// outside the network.
func (n *Network) Residual(u, v int) int64 {
	if u < 0 || v < 0 || u >= n.Nodes || v >= n.Nodes {
		return 0
	}

	return n.Capacity[u][v]
}

// CloneCapacity returns a deep copy of the residual capacity matrix.
func (n *Network) CloneCapacity() [][]int64 {
	return cloneMatrix(n.Capacity)
}

// inferSink returns the largest To index and checks that every endpoint of
// every arc lies in [0, sink]. The sink must differ from the source.
func inferSink(edges []Edge) (int, error) {
	sink := -1
	for _, e := range edges {
		if e.To > sink {
			sink = e.To
		}
	}
	if sink < 0 {
		return 0, fmt.Errorf("%w: no edge ends at a non-negative node", ErrNodeOutOfRange)
	}
	if sink == 0 {
		return 0, ErrSourceIsSink
	}
	for i, e := range edges {
		if e.From < 0 || e.To < 0 || e.From > sink {
			return 0, fmt.Errorf("%w: edge %d (%d→%d), sink is %d", ErrNodeOutOfRange, i, e.From, e.To, sink)
		}
	}

	return sink, nil
}

// newNetwork allocates an empty network of n nodes. Each matrix is backed by
// a single contiguous slice of n*n cells.
func newNetwork(n int) *Network {
	return &Network{
		Nodes:     n,
		Source:    0,
		Sink:      n - 1,
		Adjacency: make([][]int, n),
		Cost:      newMatrix(n),
		Capacity:  newMatrix(n),
	}
}

func newMatrix(n int) [][]int64 {
	cells := make([]int64, n*n)
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}

	return rows
}

func cloneMatrix(m [][]int64) [][]int64 {
	out := newMatrix(len(m))
	for i := range m {
		copy(out[i], m[i])
	}

	return out
}
