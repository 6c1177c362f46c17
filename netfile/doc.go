// Package netfile reads and writes network documents: a named flow network
// or a matching problem together with the solve parameters.
//
// Three encodings are supported and chosen by file extension or by name:
//
//	.json        FormatJSON  (encoding/json)
//	.toml        FormatTOML  (github.com/BurntSushi/toml)
//	.yaml, .yml  FormatYAML  (gopkg.in/yaml.v3)
//
// A document in YAML:
//
//	source: SOURCE
//	sink: SINK
//	desired_flow: 2
//	edges:
//	  - {from: SOURCE, to: a, capacity: 1}
//	  - {from: a, to: SINK, capacity: 1, cost: 3}
//
// Edges and Pairs are alternatives; a document holding both is solved as a
// network by the command line and its pairs are ignored. Source and Sink
// default to the "SOURCE"/"SINK" sentinels when empty; DesiredFlow absent
// means unbounded.
//
// Decode validates field constraints (non-empty names, non-negative
// capacities and flows) and rejects documents without edges and pairs with
// ErrEmptyDocument. Structural checks (gaps, parallel arcs) stay with
// package network, which sees the renamed network.
package netfile
