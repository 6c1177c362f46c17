// Package builder generates flow networks for examples, benchmarks and the
// command line's generate command.
//
// Every generator is a Constructor; BuildNetwork resolves the functional
// options once and applies the constructors in order to one Draft, which
// accumulates named arcs ready for mcflow.Solve or netfile.FromArcs.
//
//   - Configuration primitives:
//     – BuilderOption:   mutates builderConfig before construction.
//     – WithSeed/WithRand:       RNG for stochastic constructors.
//     – WithIDScheme:            index → node name (default "0","1",…).
//     – WithCapacityFn/WithCostFn: per-arc capacity and cost generators.
//     – WithPartitionPrefix:     bipartite side labels (default "L"/"R").
//     – WithSentinels:           source/sink names (default "SOURCE"/"SINK").
//   - Weight generators (WeightFn):
//     – ConstantWeightFn: fixed value.
//     – UniformWeightFn:  uniform integer in [min, max].
//   - Topologies:
//     – Path(n):                source → 0 → … → n-1 → sink.
//     – CompleteBipartite(m,n): transportation network source → L → R → sink.
//     – Grid(rows, cols):       right/down grid from the top-left cell to the
//     bottom-right cell.
//     – RandomSparse(n, p):     random DAG, arc i→j (i<j) with probability p.
//
// Guarantees:
//
//   - Every generated arc runs from a lower to a higher position in a fixed
//     topological order, so networks never contain antiparallel arcs or
//     cycles and always pass network.Validate.
//   - Arcs leaving the source and entering the sink cost 0; inner arcs take
//     their cost from the cost generator.
//   - Determinism: the same options, seed and constructor order produce the
//     same arcs in the same order.
//   - Fast-fail on meaningless option values via panics in option
//     constructors; constructors return sentinel errors and never panic.
package builder
