package matching

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/network"
)

// Pair is a candidate match between Left and Right at cost Weight.
type Pair[K cmp.Ordered] struct {
	Left   K     `json:"left" toml:"left" yaml:"left"`
	Right  K     `json:"right" toml:"right" yaml:"right"`
	Weight int64 `json:"weight" toml:"weight" yaml:"weight"`
}

// MinWeight returns a maximum-cardinality matching of minimum total weight
// among pairs. opts are forwarded to flow.Solve.
func MinWeight[K cmp.Ordered](pairs []Pair[K], opts ...flow.Option) ([]Pair[K], error) {
	if len(pairs) == 0 {
		return []Pair[K]{}, nil
	}

	left := indexer[K]{ids: make(map[K]int)}
	right := indexer[K]{ids: make(map[K]int)}
	for _, p := range pairs {
		left.add(p.Left)
		right.add(p.Right)
	}

	// ids: 0 source, 1..L left, L+1..L+R right, L+R+1 sink
	nl, nr := len(left.order), len(right.order)
	sink := nl + nr + 1
	edges := make([]network.Edge, 0, nl+len(pairs)+nr)
	for i := range left.order {
		edges = append(edges, network.Edge{From: 0, To: 1 + i, Capacity: 1})
	}
	for _, p := range pairs {
		edges = append(edges, network.Edge{
			From:     1 + left.ids[p.Left],
			To:       1 + nl + right.ids[p.Right],
			Capacity: 1,
			Cost:     p.Weight,
		})
	}
	for j := range right.order {
		edges = append(edges, network.Edge{From: 1 + nl + j, To: sink, Capacity: 1})
	}

	solved, err := flow.Solve(edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("matching: %w", err)
	}

	matched := make([]Pair[K], 0, min(nl, nr))
	for i, p := range pairs {
		if solved[nl+i].Flow > 0 {
			matched = append(matched, p)
		}
	}

	return matched, nil
}

// Weight returns the total weight of pairs.
func Weight[K cmp.Ordered](pairs []Pair[K]) int64 {
	var total int64
	for _, p := range pairs {
		total += p.Weight
	}

	return total
}

// indexer numbers names by first appearance.
type indexer[K comparable] struct {
	ids   map[K]int
	order []K
}

func (ix *indexer[K]) add(name K) {
	if _, ok := ix.ids[name]; ok {
		return
	}
	ix.ids[name] = len(ix.order)
	ix.order = append(ix.order, name)
}
