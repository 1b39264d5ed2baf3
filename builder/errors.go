// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w ("GridNodes: n=-1 < min=0: ...").
//   • Runtime code never panics; option constructors may.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below its documented minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic choice without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a draft that does not form a valid graph.
var ErrConstructFailed = errors.New("builder: construction failed")
