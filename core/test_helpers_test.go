// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/core"
)

// Common node IDs used across core tests.
const (
	NodeEmpty = ""

	NodeA = "a1"
	NodeB = "a2"
	NodeC = "a3"
	NodeD = "a4"

	NodeMissing = "zz"
)

// node returns a node with a title derived from its id.
func node(id string, x, y float64) core.Node {
	return core.Node{ID: id, Title: "Node " + id, Type: core.EmptyType, X: x, Y: y}
}

// edge returns an edge of the default edge type.
func edge(source, target string) core.Edge {
	return core.Edge{Source: source, Target: target, Type: core.EmptyEdgeType}
}

// diamond RETURNS a graph a1→a2, a1→a3, a2→a4, a3→a4 in that insertion order.
func diamond(t *testing.T) core.Graph {
	t.Helper()
	g, err := core.NewGraph(
		[]core.Node{node(NodeA, 0, 0), node(NodeB, 100, 0), node(NodeC, 0, 100), node(NodeD, 100, 100)},
		[]core.Edge{edge(NodeA, NodeB), edge(NodeA, NodeC), edge(NodeB, NodeD), edge(NodeC, NodeD)},
	)
	require.NoError(t, err, "NewGraph(diamond)")

	return g
}

// nodeIDs projects the node sequence onto ids, preserving order.
func nodeIDs(g core.Graph) []string {
	var out []string
	for _, n := range g.Nodes() {
		out = append(out, n.ID)
	}

	return out
}

// edgeKeys projects the edge sequence onto "s->t" strings, preserving order.
func edgeKeys(g core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.Key().String())
	}

	return out
}
