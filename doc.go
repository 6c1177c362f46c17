// Package mcflow solves minimum-cost flow problems on directed networks with
// successive shortest paths, for networks whose nodes carry names.
//
// 🚀 What is mcflow?
//
//	A small, dependency-light toolkit that brings together:
//		• network/  – validated dense residual representation of a network
//		• flow/     – successive shortest paths, label-correcting shortest
//		              paths, Dinic max flow, TotalFlow / TotalCost
//		• naming/   – name ↔ dense id tables
//		• matching/ – bipartite minimum-weight matching on top of the solver
//		• netfile/  – JSON, TOML and YAML network documents
//		• cmd/mcflow – command line front end
//
// This package is the convenience layer: it renames a named network to dense
// ids, solves it, and renames the result back, keeping every input arc in
// its original order with Flow filled in.
//
//	Solve        – string names with "SOURCE"/"SINK" sentinels (WithSentinels
//	               changes them).
//	SolveKeyed   – the same for any ordered key type.
//	SolveNumeric – dense ids, node 0 the source, the largest id the sink.
//
// Quick example:
//
//	SOURCE ─1─► alice ─$2─► job ─1─► SINK
//
//	solved, _ := mcflow.Solve(edges)
//	flow.TotalFlow(solved, "SOURCE") // 1
//	flow.TotalCost(solved)           // 2
//
// Both sentinels must be referenced by at least one arc; otherwise
// ErrSourceNotFound or ErrSinkNotFound is returned. Everything else
// (validation, negative cycles, cancellation) behaves as in package flow.
package mcflow
