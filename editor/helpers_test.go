package editor_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/editor"
)

// twoNodes RETURNS the graph {a1 (special), a2}, edge a1→a2.
func twoNodes(t *testing.T) core.Graph {
	t.Helper()
	g, err := core.NewGraph(
		[]core.Node{
			{ID: "a1", Title: "Node A", Type: core.SpecialType, X: 10, Y: 20},
			{ID: "a2", Title: "Node B", Type: core.EmptyType, X: 300, Y: 40},
		},
		[]core.Edge{{Source: "a1", Target: "a2", Type: core.SpecialEdgeType, HandleText: "5"}},
	)
	require.NoError(t, err)

	return g
}

// threeNodes RETURNS a1, a2, a3 with edges a1→a2, a2→a3.
func threeNodes(t *testing.T) core.Graph {
	t.Helper()
	g, err := core.NewGraph(
		[]core.Node{
			{ID: "a1", Type: core.SpecialType},
			{ID: "a2", Type: core.EmptyType},
			{ID: "a3", Type: core.EmptyType},
		},
		[]core.Edge{
			{Source: "a1", Target: "a2", Type: core.SpecialEdgeType, HandleText: "5"},
			{Source: "a2", Target: "a3", Type: core.EmptyEdgeType},
		},
	)
	require.NoError(t, err)

	return g
}

// newStore builds a deterministic store that records its logs.
func newStore(t *testing.T, g core.Graph, opts ...editor.Option) (*editor.GraphStore, *observer.ObservedLogs) {
	t.Helper()
	zc, logs := observer.New(zapcore.DebugLevel)
	base := []editor.Option{
		editor.WithLogger(zap.New(zc)),
		editor.WithNodeTypePolicy(editor.FixedNodeType(core.EmptyType)),
	}

	return editor.NewGraphStore(g, append(base, opts...)...), logs
}

// mustNode fetches a stored node or fails.
func mustNode(t *testing.T, g core.Graph, id string) core.Node {
	t.Helper()
	n, ok := g.Node(id)
	require.True(t, ok, "node %s must exist", id)

	return n
}

// recorder is an editor.Observer capturing (operation, outcome) pairs.
type recorder struct {
	ops      []editor.Operation
	outcomes []editor.Outcome
}

func (r *recorder) ObserveOperation(op editor.Operation, outcome editor.Outcome, _ core.Graph) {
	r.ops = append(r.ops, op)
	r.outcomes = append(r.outcomes, outcome)
}
