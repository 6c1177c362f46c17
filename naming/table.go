package naming

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/mcflow/network"
)

// Table is an immutable bidirectional mapping between names and dense ids.
type Table[K cmp.Ordered] struct {
	names []K
	index map[K]int
}

// NewTable collects every name referenced by edges and orders them as
// [source, ascending others, sink]. The sentinels get their slots whether or
// not an arc references them.
func NewTable[K cmp.Ordered](edges []network.Arc[K], source, sink K) (*Table[K], error) {
	if source == sink {
		return nil, fmt.Errorf("%w: %v", ErrSameSentinel, source)
	}

	others := make(map[K]struct{}, len(edges))
	for _, e := range edges {
		others[e.From] = struct{}{}
		others[e.To] = struct{}{}
	}
	delete(others, source)
	delete(others, sink)

	names := make([]K, 0, len(others)+2)
	names = append(names, source)
	middle := make([]K, 0, len(others))
	for name := range others {
		middle = append(middle, name)
	}
	slices.Sort(middle)
	names = append(names, middle...)
	names = append(names, sink)

	return newTable(names), nil
}

// TableOf adopts names as a table: names[0] is the source and the last name
// the sink. The slice is copied.
func TableOf[K cmp.Ordered](names []K) (*Table[K], error) {
	if len(names) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewNames, len(names))
	}
	t := newTable(slices.Clone(names))
	if len(t.index) != len(names) {
		for i, name := range names {
			if t.index[name] != i {
				return nil, fmt.Errorf("%w: %v", ErrDuplicateName, name)
			}
		}
	}

	return t, nil
}

func newTable[K cmp.Ordered](names []K) *Table[K] {
	index := make(map[K]int, len(names))
	for i, name := range names {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	return &Table[K]{names: names, index: index}
}

// Index returns the dense id of name.
func (t *Table[K]) Index(name K) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Name returns the name of dense id i.
func (t *Table[K]) Name(i int) (K, bool) {
	if i < 0 || i >= len(t.names) {
		var zero K
		return zero, false
	}
	return t.names[i], true
}

// Len returns the number of names.
func (t *Table[K]) Len() int { return len(t.names) }

// Names returns a copy of the names in id order.
func (t *Table[K]) Names() []K { return slices.Clone(t.names) }

// Source returns the name at id 0.
func (t *Table[K]) Source() K { return t.names[0] }

// Sink returns the name at the largest id.
func (t *Table[K]) Sink() K { return t.names[len(t.names)-1] }
