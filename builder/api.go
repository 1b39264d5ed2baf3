// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order on a
//     draft, validates the draft with core.NewGraph.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// draft accumulates nodes and edges before validation.
type draft struct {
	nodes []core.Node
	edges []core.Edge
}

// Constructor appends nodes and edges to the draft using the resolved builderConfig.
// Constructors MUST validate parameters early, return sentinel errors and preserve
// determinism for the same config and call order.
type Constructor func(d *draft, cfg builderConfig) error

// BuildGraph resolves bopts, applies all constructors in order and returns the
// validated snapshot. Constructor errors are wrapped with "BuildGraph: %w"; a draft
// rejected by core.NewGraph yields ErrConstructFailed together with the core error.
//
// Complexity: O(len(bopts)) + Σ cost of constructors + O(V+E) validation.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	d := &draft{}
	for i, fn := range cons {
		if fn == nil {
			return core.Graph{}, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return core.Graph{}, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	g, err := core.NewGraph(d.nodes, d.edges)
	if err != nil {
		return core.Graph{}, fmt.Errorf("%s: %w: %w", MethodBuildGraph, ErrConstructFailed, err)
	}

	return g, nil
}

// Sample returns the bundled demo graph: start1 and a1..a7 with nine labelled edges.
func Sample() (core.Graph, error) {
	return BuildGraph(nil, SampleGraph())
}

// Generate returns n nodes laid out on a grid and chained a1→a2→…→an, with node and
// edge types drawn from the configured pools. n == 0 yields an empty graph.
//
// Errors:
//   - ErrTooFewVertices when n < 0.
//   - ErrNeedRandSource when a type pool has several entries and no WithSeed/WithRand.
//
// Complexity: O(n).
func Generate(n int, opts ...BuilderOption) (core.Graph, error) {
	return BuildGraph(opts, GridNodes(n), Chain())
}
