// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// api.go — public entry point and the Draft accumulator.
//
// Design contract:
//   • One orchestrator: BuildNetwork(bopts, cons...). Resolves cfg once and
//     runs cons in order on a single Draft.
//   • Determinism: same options, seed and constructor order ⇒ identical arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mcflow/network"
)

// Constructor adds arcs to d using the resolved configuration. Constructors
// validate parameters early, return sentinel errors and never panic.
type Constructor func(d *Draft, cfg builderConfig) error

// Draft accumulates the arcs of a network under construction.
type Draft struct {
	arcs []network.Arc[string]
	seen map[[2]string]struct{}
}

// Arcs returns a copy of the arcs added so far, in emission order.
func (d *Draft) Arcs() []network.Arc[string] {
	return append([]network.Arc[string](nil), d.arcs...)
}

// Len returns the number of arcs added so far.
func (d *Draft) Len() int { return len(d.arcs) }

// addArc appends from→to, rejecting a repeated ordered pair.
func (d *Draft) addArc(from, to string, capacity, cost int64) error {
	key := [2]string{from, to}
	if _, ok := d.seen[key]; ok {
		return fmt.Errorf("%s→%s: %w", from, to, ErrDuplicateArc)
	}
	d.seen[key] = struct{}{}
	d.arcs = append(d.arcs, network.Arc[string]{From: from, To: to, Capacity: capacity, Cost: cost})

	return nil
}

// addInner emits an inner arc with generated capacity and cost.
func (d *Draft) addInner(from, to string, cfg builderConfig) error {
	return d.addArc(from, to, cfg.capacityFn(cfg.rng), cfg.costFn(cfg.rng))
}

// addTerminal emits a source or sink arc: generated capacity, zero cost.
func (d *Draft) addTerminal(from, to string, cfg builderConfig) error {
	return d.addArc(from, to, cfg.capacityFn(cfg.rng), 0)
}

// BuildNetwork resolves bopts and applies every constructor in order to a
// fresh Draft. Any constructor error is wrapped with "BuildNetwork: %w" and
// returned immediately.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) ([]network.Arc[string], error) {
	cfg := newBuilderConfig(bopts...)
	d := &Draft{seen: make(map[[2]string]struct{})}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return d.arcs, nil
}
