// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// weight_fn.go — capacity and cost generators.

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces a capacity or cost given an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always yields value. Any value is accepted; negative costs
// are legal on acyclic networks.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max] inclusive. Panics if
// max < min. With a nil RNG it yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
