package naming

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/mcflow/network"
)

// Rename builds the table of edges and converts them to dense ids.
func Rename[K cmp.Ordered](edges []network.Arc[K], source, sink K) ([]network.Edge, *Table[K], error) {
	t, err := NewTable(edges, source, sink)
	if err != nil {
		return nil, nil, err
	}
	out, err := RenameWith(edges, t)
	if err != nil {
		return nil, nil, err
	}

	return out, t, nil
}

// RenameWith converts edges to dense ids using t. Every name must be in t.
func RenameWith[K cmp.Ordered](edges []network.Arc[K], t *Table[K]) ([]network.Edge, error) {
	out := make([]network.Edge, len(edges))
	for i, e := range edges {
		from, ok := t.Index(e.From)
		if !ok {
			return nil, fmt.Errorf("%w: edge %d from %v", ErrUnknownNode, i, e.From)
		}
		to, ok := t.Index(e.To)
		if !ok {
			return nil, fmt.Errorf("%w: edge %d to %v", ErrUnknownNode, i, e.To)
		}
		out[i] = network.Edge{
			From:     from,
			To:       to,
			Capacity: e.Capacity,
			Cost:     e.Cost,
			Flow:     e.Flow,
		}
	}

	return out, nil
}

// RenameBack converts dense ids back to names using t.
func RenameBack[K cmp.Ordered](edges []network.Edge, t *Table[K]) ([]network.Arc[K], error) {
	out := make([]network.Arc[K], len(edges))
	for i, e := range edges {
		from, ok := t.Name(e.From)
		if !ok {
			return nil, fmt.Errorf("%w: edge %d from %d (table has %d names)", ErrIndexOutOfRange, i, e.From, t.Len())
		}
		to, ok := t.Name(e.To)
		if !ok {
			return nil, fmt.Errorf("%w: edge %d to %d (table has %d names)", ErrIndexOutOfRange, i, e.To, t.Len())
		}
		out[i] = network.Arc[K]{
			From:     from,
			To:       to,
			Capacity: e.Capacity,
			Cost:     e.Cost,
			Flow:     e.Flow,
		}
	}

	return out, nil
}
