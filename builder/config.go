// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = OrdinalIDFn("a")   ("a1","a2",...)
//   • rng        = nil                 (no randomness unless seeded)
//   • rowLength  = 20
//   • spacing    = 200
//   • nodeTypes  = core.NodeTypes
//   • edgeTypes  = core.EdgeTypes

package builder

import (
	"math/rand"

	"github.com/katalvlaran/digraph/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node ID strategy: zero-based index -> ID.
	idFn IDFn
	// RNG for type draws; nil means "no randomness".
	rng *rand.Rand

	// Grid layout of GridNodes.
	rowLength int
	spacing   float64

	// Type pools for GridNodes and Chain.
	nodeTypes []core.TypeTag
	edgeTypes []core.TypeTag
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      OrdinalIDFn(DefaultIDPrefix),
		rowLength: DefaultRowLength,
		spacing:   DefaultSpacing,
		nodeTypes: core.NodeTypes,
		edgeTypes: core.EdgeTypes,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
