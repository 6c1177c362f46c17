// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = decimalID           ("0","1","2",...)
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • capacityFn  = ConstantWeightFn(1)
//   • costFn      = ConstantWeightFn(1)
//   • left/right  = "L" / "R"
//   • source/sink = "SOURCE" / "SINK"

package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/mcflow/naming"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	idFn       func(int) string
	rng        *rand.Rand
	capacityFn WeightFn
	costFn     WeightFn

	leftPrefix  string
	rightPrefix string

	source string
	sink   string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
	defaultConstWeight = int64(1)
)

// newBuilderConfig applies options in order over the defaults; empty
// prefixes and sentinels fall back to the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        decimalID,
		capacityFn:  ConstantWeightFn(defaultConstWeight),
		costFn:      ConstantWeightFn(defaultConstWeight),
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		source:      naming.DefaultSource,
		sink:        naming.DefaultSink,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}
	if cfg.source == "" {
		cfg.source = naming.DefaultSource
	}
	if cfg.sink == "" {
		cfg.sink = naming.DefaultSink
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
