// Package flow solves the minimum-cost flow problem with the successive
// shortest paths (SSP) algorithm on networks built by package network.
//
// Given arcs with capacity and per-unit cost, SSP finds a flow of a desired
// magnitude (or the maximum possible) with minimum total cost.
//
// # SuccessiveShortestPaths
//
//	Method: repeatedly find the cheapest source→sink path in the residual
//	        graph and push its bottleneck along it.
//	Time:   O(F · n · E) for total flow F (integral capacities).
//	Memory: O(n²) for the dense residual and cost matrices.
//
// Every intermediate flow is of minimum cost for its magnitude, so an early
// stop at DesiredFlow is still optimal. DesiredFlow counts the net flow
// already leaving the source; arcs into the source that carry flow make that
// count negative, and augmenting paths may cancel such inflow.
//
// # ShortestPaths
//
//	Method: label-correcting Bellman–Ford with a worklist (SPFA).
//	Costs:  reverse residual arcs carry negated costs, so negative arcs
//	        are expected.
//
// The worklist is FIFO by default; WorklistPriority uses an indexed heap and
// only changes how many relaxations are performed.
//
// # MaxFlow
//
//	Method: Dinic on a copy of the residual capacities, costs ignored.
//	Use:    checking feasibility of a desired flow.
//
// # Entry points
//
//	func Solve(edges []network.Edge, opts ...Option) ([]network.Edge, error)
//	func SuccessiveShortestPaths(net *network.Network, opts ...Option) (*Result, error)
//	func ShortestPaths(net *network.Network, kind Worklist) ([]int64, []int, error)
//	func MaxFlow(net *network.Network, opts ...Option) (int64, error)
//	func TotalFlow[K comparable](edges []network.Arc[K], source K) int64
//	func TotalCost[K comparable](edges []network.Arc[K]) int64
//
// Solve returns a new edge list whose Flow fields hold the realized flow; the
// input is never modified.
//
// # Options
//
//	opts := flow.DefaultOptions()
//	// opts.DesiredFlow = flow.Unbounded
//	// opts.Worklist    = flow.WorklistFIFO
//	// opts.Ctx         = context.Background()
//	// opts.Logger      = nil
//
// Functional options: WithDesiredFlow, WithWorklist, WithContext, WithLogger,
// WithBuildOptions.
//
// # Preconditions
//
// The residual graph must not contain a negative-cost cycle reachable from
// the source. SSP preserves this for any input whose preexisting flow is zero
// or already of minimum cost; otherwise ShortestPaths reports ErrNegativeCycle.
// Structural preconditions (no parallel or antiparallel arcs, contiguous ids)
// are checked by network.Build.
//
// # Errors
//
//	ErrNilNetwork      – nil network.
//	ErrNegativeCycle   – malformed costs or non-optimal preexisting flow.
//	network.Err*       – from Build, passed through unchanged.
//	context errors     – when WithContext's context is done.
package flow
