// Package network builds the dense residual representation consumed by the
// min-cost flow solver in package flow.
//
// A network is given as a list of directed arcs between dense integer nodes.
// Node 0 is the source; the largest To index seen across all arcs is the sink,
// so a network of n nodes is indexed 0..n-1 with the sink at n-1.
//
// Build turns that list into three n×n structures:
//
//	Adjacency[u]   – nodes reachable from u through a forward OR reverse arc.
//	                 Both directions are always inserted, because any arc may
//	                 later carry flow that can be canceled.
//	Cost[u][v]     – per-unit cost of u→v; Cost[v][u] = -Cost[u][v], so that
//	                 canceling flow is priced correctly. Immutable after Build.
//	Capacity[u][v] – residual capacity: Capacity[from][to] = capacity - flow,
//	                 Capacity[to][from] = flow. The only state mutated by a solve.
//
// Readback reads the realized flow of every input arc back from the residual
// matrix: Flow = Capacity[To][From].
//
// # Preconditions
//
// The dense matrices collapse parallel arcs (u→v twice) and antiparallel arcs
// (u→v together with v→u). Build validates this by default and fails fast:
//
//	ErrEmptyNetwork      – no arcs at all (the sink is undefined).
//	ErrInvalidEdge       – negative ids, capacity or flow; flow above capacity.
//	ErrNodeOutOfRange    – an arc leaves a node beyond the sink index.
//	ErrNodeGap           – some index in [0, n) is never referenced.
//	ErrSelfLoop          – an arc u→u.
//	ErrParallelEdge      – the same ordered pair appears twice.
//	ErrAntiparallelEdge  – both u→v and v→u are present.
//	ErrSourceIsSink      – every arc ends at node 0.
//
// WithoutValidation skips the semantic checks and keeps the historical
// behaviour (silently incorrect results on violating input). Range checks and
// ErrEmptyNetwork/ErrSourceIsSink are always enforced, since violating them
// would index outside the matrices or make the solve loop unbounded.
//
// Complexity: Build is O(n² + E) time and memory, Validate is O(E).
package network
