// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/digraph/core"
)

// BuilderOption customizes the builderConfig before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator: zero-based index -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for type draws. Panics on nil.
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

// WithRowLength sets how many generated nodes share a grid row. Panics if n < 1.
func WithRowLength(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithRowLength(n<1)")
	}
	return func(c *builderConfig) {
		c.rowLength = n
	}
}

// WithSpacing sets the pixel distance between neighbouring generated nodes. Panics if px <= 0.
func WithSpacing(px float64) BuilderOption {
	if px <= 0 {
		panic("builder: WithSpacing(px<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = px
	}
}

// WithNodeTypes sets the pool GridNodes draws node types from. Panics on an empty pool.
func WithNodeTypes(tags ...core.TypeTag) BuilderOption {
	if len(tags) == 0 {
		panic("builder: WithNodeTypes()")
	}
	pool := append([]core.TypeTag(nil), tags...)
	return func(c *builderConfig) {
		c.nodeTypes = pool
	}
}

// WithEdgeTypes sets the pool Chain draws edge types from. Panics on an empty pool.
func WithEdgeTypes(tags ...core.TypeTag) BuilderOption {
	if len(tags) == 0 {
		panic("builder: WithEdgeTypes()")
	}
	pool := append([]core.TypeTag(nil), tags...)
	return func(c *builderConfig) {
		c.edgeTypes = pool
	}
}
