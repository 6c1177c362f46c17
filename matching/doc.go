// Package matching solves bipartite minimum-weight matching by reduction to
// minimum-cost flow.
//
// Each Pair is a candidate edge between a left node and a right node. The
// reduction builds
//
//	source ─(1,$0)─► left ─(1,$weight)─► right ─(1,$0)─► sink
//
// with one arc per candidate, so every left and every right node is used at
// most once. Left and right names live in separate namespaces: the same name
// may appear on both sides and denotes two different nodes.
//
// With the default unbounded desired flow the result is a maximum-cardinality
// matching of minimum total weight among those: cardinality comes first, so a
// single cheap pair loses to two expensive ones. flow.WithDesiredFlow(k)
// caps the matching at k pairs and returns the cheapest such matching.
//
// MinWeight returns the chosen pairs in input order. An empty candidate list
// yields an empty matching; a repeated (left, right) candidate is rejected
// with network.ErrParallelEdge.
package matching
