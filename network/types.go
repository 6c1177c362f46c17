package network

import "errors"

// Sentinel errors returned by Build and Validate. Callers branch with errors.Is;
// context (edge position, node ids) is attached with %w wrapping.
var (
	// ErrEmptyNetwork indicates that the arc list is empty.
	ErrEmptyNetwork = errors.New("network: no edges")

	// ErrInvalidEdge indicates a field constraint violation on a single arc
	// (negative node id, negative capacity or flow, flow above capacity).
	ErrInvalidEdge = errors.New("network: invalid edge")

	// ErrNodeOutOfRange indicates an arc whose endpoint lies outside [0, n).
	ErrNodeOutOfRange = errors.New("network: node index out of range")

	// ErrNodeGap indicates that node indices are not contiguous from 0.
	ErrNodeGap = errors.New("network: node indices are not contiguous")

	// ErrSelfLoop indicates an arc from a node to itself.
	ErrSelfLoop = errors.New("network: self loop")

	// ErrParallelEdge indicates two arcs over the same ordered pair.
	ErrParallelEdge = errors.New("network: parallel edges")

	// ErrAntiparallelEdge indicates arcs in both directions between two nodes.
	ErrAntiparallelEdge = errors.New("network: antiparallel edges")

	// ErrSourceIsSink indicates that the inferred sink is node 0.
	ErrSourceIsSink = errors.New("network: source and sink coincide")
)

// Arc is one directed arc of a flow network whose nodes are identified by K.
// Flow is the amount already routed along the arc; it defaults to zero and
// lets a caller resume a partial solve.
type Arc[K comparable] struct {
	From     K     `json:"from" validate:"gte=0"`
	To       K     `json:"to" validate:"gte=0"`
	Capacity int64 `json:"capacity" validate:"gte=0"`
	Cost     int64 `json:"cost"`
	Flow     int64 `json:"flow" validate:"gte=0,ltefield=Capacity"`
}

// Edge is an arc between dense integer nodes, the representation the solver
// works on. Node ids must be non-negative.
type Edge = Arc[int]

// Network is the dense residual representation of a flow network.
type Network struct {
	// Nodes is the number of nodes n; valid indices are [0, n).
	Nodes int
	// Source is always 0.
	Source int
	// Sink is n-1, the largest To index of the input arcs.
	Sink int
	// Adjacency[u] lists every v such that u→v or v→u is an input arc.
	Adjacency [][]int
	// Cost[u][v] is the per-unit cost of the residual arc u→v.
	Cost [][]int64
	// Capacity[u][v] is the residual capacity of u→v.
	Capacity [][]int64
	// Flow is the net flow currently leaving the source. Build sets it from
	// the input arcs; the solver advances it with every augmentation.
	Flow int64
}

// Options configures Build.
type Options struct {
	// Validate enables the precondition checks performed by Validate.
	Validate bool
}

// Option mutates Options before a build starts.
type Option func(*Options)

// WithoutValidation disables the parallel/antiparallel/contiguity/field checks.
// Input violating them produces silently incorrect results.
func WithoutValidation() Option {
	return func(o *Options) {
		o.Validate = false
	}
}

// WithValidation enables the precondition checks (the default).
func WithValidation() Option {
	return func(o *Options) {
		o.Validate = true
	}
}

// DefaultOptions returns the default build configuration: validation on.
func DefaultOptions() Options {
	return Options{Validate: true}
}
