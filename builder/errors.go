// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, side
// sizes) is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was run without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrDuplicateArc indicates that composed constructors emitted the same arc
// twice, which a network cannot represent.
var ErrDuplicateArc = errors.New("builder: duplicate arc")

// ErrConstructFailed indicates a nil constructor passed to BuildNetwork.
var ErrConstructFailed = errors.New("builder: construction failed")
