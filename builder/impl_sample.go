// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// impl_sample.go - the bundled demo graph.
//
// Contract:
//   - Fixed ids; cfg.idFn and cfg.rng are ignored.
//   - start1 has no position (0,0); a5 has no type (empty tag); a2 carries the
//     specialChild subtype.
//   - Nine edges, every one with handle text, in a stable order.

package builder

import "github.com/katalvlaran/digraph/core"

// Sample node ids.
const (
	SampleStartID = "start1"
	SampleHubID   = "a1"
)

var sampleNodes = []core.Node{
	{ID: SampleStartID, Title: "Start (0)", Type: core.SpecialType},
	{ID: "a1", Title: "Node A (1)", Type: core.SpecialType, X: 258.3976135253906, Y: 331.9783248901367},
	{ID: "a2", Title: "Node B (2)", Type: core.EmptyType, Subtype: core.SpecialChildSubtype, X: 593.9393920898438, Y: 260.6060791015625},
	{ID: "a3", Title: "Node C (3)", Type: core.EmptyType, X: 237.5757598876953, Y: 61.81818389892578},
	{ID: "a4", Title: "Node D (4)", Type: core.EmptyType, X: 600.5757598876953, Y: 600.8181838989258},
	{ID: "a5", Title: "Node E (5)", X: 50.5757598876953, Y: 500.8181838989258},
	{ID: "a6", Title: "Node E (6)", Type: core.SkinnyType, X: 300, Y: 600},
	{ID: "a7", Title: "Node F (7)", Type: core.PolyType, X: 0, Y: 300},
}

var sampleEdges = []core.Edge{
	{Source: SampleStartID, Target: "a1", Type: core.SpecialEdgeType, HandleText: "5"},
	{Source: "a1", Target: "a2", Type: core.SpecialEdgeType, HandleText: "5"},
	{Source: "a2", Target: "a4", Type: core.EmptyEdgeType, HandleText: "54"},
	{Source: "a1", Target: "a3", Type: core.EmptyEdgeType, HandleText: "54"},
	{Source: "a3", Target: "a4", Type: core.EmptyEdgeType, HandleText: "54"},
	{Source: "a1", Target: "a5", Type: core.EmptyEdgeType, HandleText: "54"},
	{Source: "a4", Target: "a1", Type: core.EmptyEdgeType, HandleText: "54"},
	{Source: "a1", Target: "a6", Type: core.EmptyEdgeType, HandleText: "54"},
	{Source: "a1", Target: "a7", Type: core.EmptyEdgeType, HandleText: "24"},
}

// SampleGraph returns a Constructor that appends the demo graph.
func SampleGraph() Constructor {
	return func(d *draft, _ builderConfig) error {
		d.nodes = append(d.nodes, sampleNodes...)
		d.edges = append(d.edges, sampleEdges...)

		return nil
	}
}
