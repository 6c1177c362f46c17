package netfile

import (
	"github.com/katalvlaran/mcflow/matching"
	"github.com/katalvlaran/mcflow/naming"
	"github.com/katalvlaran/mcflow/network"
)

// Sentinels returns the source and sink names, defaulting to
// naming.DefaultSource and naming.DefaultSink.
func (d *Document) Sentinels() (source, sink string) {
	source, sink = d.Source, d.Sink
	if source == "" {
		source = naming.DefaultSource
	}
	if sink == "" {
		sink = naming.DefaultSink
	}

	return source, sink
}

// Arcs converts the edge records to named arcs.
func (d *Document) Arcs() []network.Arc[string] {
	arcs := make([]network.Arc[string], len(d.Edges))
	for i, e := range d.Edges {
		arcs[i] = network.Arc[string]{
			From:     e.From,
			To:       e.To,
			Capacity: e.Capacity,
			Cost:     e.Cost,
			Flow:     e.Flow,
		}
	}

	return arcs
}

// MatchPairs converts the pair records to matching candidates.
func (d *Document) MatchPairs() []matching.Pair[string] {
	pairs := make([]matching.Pair[string], len(d.Pairs))
	for i, p := range d.Pairs {
		pairs[i] = matching.Pair[string]{Left: p.Left, Right: p.Right, Weight: p.Weight}
	}

	return pairs
}

// FromArcs builds a network document. Empty sentinels are left empty and
// resolve to the defaults.
func FromArcs(arcs []network.Arc[string], source, sink string) *Document {
	doc := &Document{Source: source, Sink: sink, Edges: make([]EdgeRecord, len(arcs))}
	for i, a := range arcs {
		doc.Edges[i] = EdgeRecord{
			From:     a.From,
			To:       a.To,
			Capacity: a.Capacity,
			Cost:     a.Cost,
			Flow:     a.Flow,
		}
	}

	return doc
}

// FromPairs builds a matching document.
func FromPairs(pairs []matching.Pair[string]) *Document {
	doc := &Document{Pairs: make([]PairRecord, len(pairs))}
	for i, p := range pairs {
		doc.Pairs[i] = PairRecord{Left: p.Left, Right: p.Right, Weight: p.Weight}
	}

	return doc
}
