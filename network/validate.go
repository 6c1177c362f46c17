package network

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rhartert/sparsesets"
)

// edgeValidate checks the struct tags of Arc. validator.Validate caches struct
// metadata and is safe for concurrent use.
var edgeValidate = validator.New()

// pair is an ordered (from, to) node pair.
type pair struct {
	from, to int
}

// Validate checks the preconditions the dense representation relies on and
// returns the first violation found, wrapped around one of the package
// sentinels.
//
// Order of checks:
//  1. ErrEmptyNetwork   – len(edges) == 0.
//  2. ErrInvalidEdge    – struct tags (ids, capacity, flow ≤ capacity).
//  3. ErrSourceIsSink   – the inferred sink is node 0.
//  4. ErrNodeOutOfRange – From beyond the sink.
//  5. ErrSelfLoop, ErrParallelEdge, ErrAntiparallelEdge – per arc, in input order.
//  6. ErrNodeGap        – an index in [0, n) no arc touches.
//
// Complexity: O(E) time, O(E + n) memory.
func Validate(edges []Edge) error {
	if len(edges) == 0 {
		return ErrEmptyNetwork
	}

	for i := range edges {
		if err := edgeValidate.Struct(&edges[i]); err != nil {
			return fmt.Errorf("%w: edge %d (%d→%d): %v", ErrInvalidEdge, i, edges[i].From, edges[i].To, err)
		}
	}

	sink, err := inferSink(edges)
	if err != nil {
		return err
	}
	n := sink + 1

	seen := sparsesets.New(n)
	arcs := make(map[pair]int, len(edges))
	for i, e := range edges {
		if e.From == e.To {
			return fmt.Errorf("%w: edge %d (%d→%d)", ErrSelfLoop, i, e.From, e.To)
		}
		if j, ok := arcs[pair{e.From, e.To}]; ok {
			return fmt.Errorf("%w: edges %d and %d both run %d→%d", ErrParallelEdge, j, i, e.From, e.To)
		}
		if j, ok := arcs[pair{e.To, e.From}]; ok {
			return fmt.Errorf("%w: edge %d (%d→%d) reverses edge %d", ErrAntiparallelEdge, i, e.From, e.To, j)
		}
		arcs[pair{e.From, e.To}] = i

		for _, v := range [2]int{e.From, e.To} {
			if !seen.Contains(v) {
				seen.Insert(v)
			}
		}
	}

	if len(seen.Content()) != n {
		for v := 0; v < n; v++ {
			if !seen.Contains(v) {
				return fmt.Errorf("%w: node %d is never referenced (n=%d)", ErrNodeGap, v, n)
			}
		}
	}

	return nil
}
