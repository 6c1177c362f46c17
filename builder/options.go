// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node name generator: index → name. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCapacityFn overrides the per-arc capacity generator. Panics on nil.
func WithCapacityFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCapacityFn(nil)")
	}
	return func(c *builderConfig) {
		c.capacityFn = fn
	}
}

// WithCostFn overrides the per-arc cost generator of inner arcs. Panics on nil.
func WithCostFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithPartitionPrefix sets bipartite side labels. Empty values mean "use
// defaults".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}

// WithSentinels sets the source and sink names. Panics if they are equal and
// non-empty; empty values mean "use defaults".
func WithSentinels(source, sink string) BuilderOption {
	if source != "" && source == sink {
		panic("builder: WithSentinels(source == sink)")
	}
	return func(c *builderConfig) {
		c.source, c.sink = source, sink
	}
}
