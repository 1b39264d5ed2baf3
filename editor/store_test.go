package editor_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/editor"
)

func TestGraphStore_InitialState(t *testing.T) {
	s, _ := newStore(t, twoNodes(t))

	st := s.State()
	assert.True(t, editor.IsEmpty(st.Selection))
	assert.Equal(t, 2, st.Graph.NodeCount())
	_, ok := s.Clipboard()
	assert.False(t, ok)
}

func TestGraphStore_DeleteNodeScenario(t *testing.T) {
	s, _ := newStore(t, twoNodes(t))
	a1 := mustNode(t, s.Graph(), "a1")
	_, err := s.SelectNode(&a1)
	require.NoError(t, err)

	res, err := s.DeleteNode(a1)
	require.NoError(t, err)

	require.Equal(t, 1, res.Graph.NodeCount())
	assert.Equal(t, "a2", res.Graph.Nodes()[0].ID)
	assert.Empty(t, res.Graph.Edges(), "cascade must remove a1→a2")
	assert.True(t, editor.IsEmpty(res.Selection))
}

func TestGraphStore_DeleteNodeCascadeProperty(t *testing.T) {
	base := threeNodes(t)
	for _, n := range base.Nodes() {
		s, _ := newStore(t, base)
		res, err := s.DeleteNode(n)
		require.NoError(t, err)
		assert.False(t, res.Graph.HasNode(n.ID))
		for _, e := range res.Graph.Edges() {
			assert.NotEqual(t, n.ID, e.Source)
			assert.NotEqual(t, n.ID, e.Target)
		}
		require.NoError(t, res.Graph.Validate())
	}
}

func TestGraphStore_DeleteNodeSelectionPolicy(t *testing.T) {
	t.Run("unconditional", func(t *testing.T) {
		s, _ := newStore(t, threeNodes(t))
		a3 := mustNode(t, s.Graph(), "a3")
		_, err := s.SelectNode(&a3)
		require.NoError(t, err)

		res, err := s.DeleteNode(mustNode(t, s.Graph(), "a1"))
		require.NoError(t, err)
		assert.True(t, editor.IsEmpty(res.Selection), "reference behavior clears any selection")
	})

	t.Run("sticky keeps unrelated selection", func(t *testing.T) {
		s, _ := newStore(t, threeNodes(t), editor.WithStickySelection())
		_, err := s.SelectEdge(core.Edge{Source: "a2", Target: "a3"})
		require.NoError(t, err)

		res, err := s.DeleteNode(mustNode(t, s.Graph(), "a1"))
		require.NoError(t, err)
		sel, ok := res.Selection.(editor.EdgeSelection)
		require.True(t, ok)
		assert.Equal(t, core.EdgeKey{Source: "a2", Target: "a3"}, sel.Edge.Key())

		res, err = s.DeleteNode(mustNode(t, s.Graph(), "a3"))
		require.NoError(t, err)
		assert.True(t, editor.IsEmpty(res.Selection), "selected edge was cascaded")
	})

	t.Run("sticky clears deleted node", func(t *testing.T) {
		s, _ := newStore(t, threeNodes(t), editor.WithStickySelection())
		a2 := mustNode(t, s.Graph(), "a2")
		_, err := s.SelectNode(&a2)
		require.NoError(t, err)

		res, err := s.DeleteNode(a2)
		require.NoError(t, err)
		assert.True(t, editor.IsEmpty(res.Selection))
	})
}

func TestGraphStore_DeleteNodeMissing(t *testing.T) {
	s, _ := newStore(t, twoNodes(t))
	before := s.Graph()

	_, err := s.DeleteNode(core.Node{ID: "zz"})
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Equal(t, before, s.Graph())
}

func TestGraphStore_UpdateNodePosition(t *testing.T) {
	s, _ := newStore(t, twoNodes(t))
	a2 := mustNode(t, s.Graph(), "a2")
	_, err := s.SelectNode(&a2)
	require.NoError(t, err)

	moved := a2
	moved.X, moved.Y = 500, 600
	res, err := s.UpdateNodePosition(moved)
	require.NoError(t, err)

	assert.Equal(t, "a2", res.Graph.Nodes()[1].ID, "position in sequence is kept")
	assert.Equal(t, moved, mustNode(t, res.Graph, "a2"))
	sel, ok := res.Selection.(editor.NodeSelection)
	require.True(t, ok)
	assert.Equal(t, 500.0, sel.Node.X, "selection tracks the same node")

	_, err = s.UpdateNodePosition(core.Node{ID: "ghost", X: 1})
	var nf *core.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "ghost", nf.Key)
	assert.Equal(t, 2, s.Graph().NodeCount(), "unknown id must not be inserted")
}

func TestGraphStore_Select(t *testing.T) {
	s, _ := newStore(t, twoNodes(t))

	res, err := s.SelectEdge(core.Edge{Source: "a1", Target: "a2"})
	require.NoError(t, err)
	sel, ok := res.Selection.(editor.EdgeSelection)
	require.True(t, ok)
	assert.Equal(t, "5", sel.Edge.HandleText, "selection holds the stored record")

	_, err = s.SelectEdge(core.Edge{Source: "a2", Target: "a1"})
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, still := s.Selection().(editor.EdgeSelection)
	assert.True(t, still, "failed select keeps previous selection")

	_, err = s.SelectNode(&core.Node{ID: "zz"})
	require.ErrorIs(t, err, core.ErrNotFound)

	res, err = s.SelectNode(nil)
	require.NoError(t, err)
	assert.Equal(t, editor.NoSelection{}, res.Selection)
}

func TestGraphStore_CreateNode(t *testing.T) {
	s, _ := newStore(t, twoNodes(t))

	res, err := s.CreateNode(12.5, 99)
	require.NoError(t, err)

	nodes := res.Graph.Nodes()
	require.Len(t, nodes, 3)
	created := nodes[2]
	assert.Equal(t, "n1", created.ID)
	assert.Equal(t, "", created.Title)
	assert.Equal(t, core.EmptyType, created.Type)
	assert.Equal(t, 12.5, created.X)
	assert.Equal(t, 99.0, created.Y)
	assert.True(t, editor.IsEmpty(res.Selection), "selection unchanged")
}

func TestGraphStore_CreateNodeFreshIDs(t *testing.T) {
	g, err := core.NewGraph([]core.Node{{ID: "n1"}, {ID: "n2"}, {ID: "n4"}}, nil)
	require.NoError(t, err)
	s, _ := newStore(t, g)

	res, err := s.CreateNode(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "n3", res.Graph.Nodes()[3].ID)

	res, err = s.CreateNode(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "n5", res.Graph.Nodes()[4].ID, "n4 is taken")

	for i := 0; i < 200; i++ {
		_, err = s.CreateNode(float64(i), 0)
		require.NoError(t, err)
	}
	require.Equal(t, 205, s.Graph().NodeCount())
	require.NoError(t, s.Graph().Validate(), "ids stay unique")
}

func TestGraphStore_CreateNodeUUID(t *testing.T) {
	s, _ := newStore(t, twoNodes(t), editor.WithIDGenerator(editor.UUIDGenerator{}))

	res, err := s.CreateNode(1, 1)
	require.NoError(t, err)
	_, err = uuid.Parse(res.Graph.Nodes()[2].ID)
	require.NoError(t, err)
}

func TestGraphStore_CreateNodeTypePolicy(t *testing.T) {
	s, _ := newStore(t, core.Graph{}, editor.WithNodeTypePolicy(editor.FixedNodeType(core.PolyType)))

	res, err := s.CreateNode(0, 0)
	require.NoError(t, err)
	assert.Equal(t, core.PolyType, res.Graph.Nodes()[0].Type)
}

func TestGraphStore_CreateEdge(t *testing.T) {
	s, _ := newStore(t, threeNodes(t))
	a1 := mustNode(t, s.Graph(), "a1")
	a2 := mustNode(t, s.Graph(), "a2")
	a3 := mustNode(t, s.Graph(), "a3")

	res, err := s.CreateEdge(a1, a3)
	require.NoError(t, err)
	edges := res.Graph.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, core.Edge{Source: "a1", Target: "a3", Type: core.SpecialEdgeType}, edges[2])
	assert.Equal(t, editor.EdgeSelection{Edge: edges[2]}, res.Selection)

	res, err = s.CreateEdge(a3, a1)
	require.NoError(t, err)
	assert.Equal(t, core.EmptyEdgeType, res.Graph.Edges()[3].Type, "non-special source ⇒ default edge type")

	_, err = s.CreateEdge(a2, core.Node{ID: "zz"})
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = s.CreateEdge(core.Node{ID: "zz"}, a2)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraphStore_CreateEdgeSelfLoopIsSilent(t *testing.T) {
	s, logs := newStore(t, threeNodes(t))
	a2 := mustNode(t, s.Graph(), "a2")
	_, err := s.SelectNode(&a2)
	require.NoError(t, err)
	before := s.State()

	res, err := s.CreateEdge(a2, a2)
	require.NoError(t, err)
	assert.Equal(t, editor.WarnNone, res.Warning)
	assert.Equal(t, before.Graph.Edges(), res.Graph.Edges())
	assert.Equal(t, before.Selection, res.Selection)
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestGraphStore_CreateEdgeDuplicate(t *testing.T) {
	t.Run("rejected by default", func(t *testing.T) {
		s, logs := newStore(t, threeNodes(t))
		res, err := s.CreateEdge(mustNode(t, s.Graph(), "a1"), mustNode(t, s.Graph(), "a2"))
		require.NoError(t, err)

		assert.Equal(t, editor.WarnDuplicateEdge, res.Warning)
		assert.Equal(t, 2, res.Graph.EdgeCount())
		sel, ok := res.Selection.(editor.EdgeSelection)
		require.True(t, ok)
		assert.Equal(t, "5", sel.Edge.HandleText, "existing edge is selected")
		assert.Equal(t, 1, logs.FilterMessage(string(editor.WarnDuplicateEdge)).Len())
	})

	t.Run("parallel edges allowed", func(t *testing.T) {
		s, _ := newStore(t, threeNodes(t), editor.WithParallelEdges())
		res, err := s.CreateEdge(mustNode(t, s.Graph(), "a1"), mustNode(t, s.Graph(), "a2"))
		require.NoError(t, err)
		assert.Equal(t, editor.WarnNone, res.Warning)
		assert.Equal(t, 3, res.Graph.EdgeCount())
	})
}

func TestGraphStore_SwapEdgeEndpoints(t *testing.T) {
	s, _ := newStore(t, threeNodes(t))
	a1 := mustNode(t, s.Graph(), "a1")
	a3 := mustNode(t, s.Graph(), "a3")
	old := core.Edge{Source: "a1", Target: "a2"}

	res, err := s.SwapEdgeEndpoints(a3, a1, old)
	require.NoError(t, err)

	edges := res.Graph.Edges()
	require.Len(t, edges, 2)
	assert.False(t, res.Graph.HasEdge(old.Key()))
	want := core.Edge{Source: "a3", Target: "a1", Type: core.SpecialEdgeType, HandleText: "5"}
	assert.Equal(t, want, edges[0], "replaced at the original position with type and handle text")
	count := 0
	for _, e := range edges {
		if e.Key() == want.Key() {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, editor.EdgeSelection{Edge: want}, res.Selection)
}

func TestGraphStore_SwapEdgeEndpointsErrors(t *testing.T) {
	s, _ := newStore(t, threeNodes(t))
	a1 := mustNode(t, s.Graph(), "a1")
	a2 := mustNode(t, s.Graph(), "a2")
	a3 := mustNode(t, s.Graph(), "a3")
	before := s.Graph()

	_, err := s.SwapEdgeEndpoints(a1, a3, core.Edge{Source: "a3", Target: "a1"})
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	_, err = s.SwapEdgeEndpoints(a1, core.Node{ID: "zz"}, core.Edge{Source: "a1", Target: "a2"})
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = s.SwapEdgeEndpoints(a3, a3, core.Edge{Source: "a1", Target: "a2"})
	require.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = s.SwapEdgeEndpoints(a2, a3, core.Edge{Source: "a1", Target: "a2"})
	require.ErrorIs(t, err, core.ErrDuplicateEdge)

	assert.Equal(t, before, s.Graph(), "failed swaps leave the graph unchanged")
}

func TestGraphStore_DeleteEdge(t *testing.T) {
	s, _ := newStore(t, threeNodes(t))
	_, err := s.SelectEdge(core.Edge{Source: "a2", Target: "a3"})
	require.NoError(t, err)

	res, err := s.DeleteEdge(core.Edge{Source: "a1", Target: "a2"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Graph.EdgeCount())
	assert.Equal(t, 3, res.Graph.NodeCount())
	assert.True(t, editor.IsEmpty(res.Selection))

	_, err = s.DeleteEdge(core.Edge{Source: "a1", Target: "a2"})
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraphStore_DeleteEdgeSticky(t *testing.T) {
	s, _ := newStore(t, threeNodes(t), editor.WithStickySelection())
	_, err := s.SelectEdge(core.Edge{Source: "a2", Target: "a3"})
	require.NoError(t, err)

	res, err := s.DeleteEdge(core.Edge{Source: "a1", Target: "a2"})
	require.NoError(t, err)
	assert.False(t, editor.IsEmpty(res.Selection))

	res, err = s.DeleteEdge(core.Edge{Source: "a2", Target: "a3"})
	require.NoError(t, err)
	assert.True(t, editor.IsEmpty(res.Selection))
}

func TestGraphStore_CopyPasteRoundTrip(t *testing.T) {
	s, _ := newStore(t, twoNodes(t))
	a1 := mustNode(t, s.Graph(), "a1")
	_, err := s.SelectNode(&a1)
	require.NoError(t, err)

	res, err := s.CopySelected()
	require.NoError(t, err)
	assert.Equal(t, editor.WarnNone, res.Warning)
	clip, ok := s.Clipboard()
	require.True(t, ok)
	assert.Equal(t, a1.X+editor.DefaultPasteOffset, clip.X)

	res, err = s.PasteSelected()
	require.NoError(t, err)

	nodes := res.Graph.Nodes()
	require.Len(t, nodes, 3)
	pasted := nodes[2]
	assert.NotEqual(t, a1.ID, pasted.ID)
	assert.Equal(t, "n1", pasted.ID)
	assert.Equal(t, a1.Title, pasted.Title)
	assert.Equal(t, a1.Type, pasted.Type)
	assert.Equal(t, a1.X+10, pasted.X)
	assert.Equal(t, a1.Y+10, pasted.Y)
	assert.Equal(t, editor.NodeSelection{Node: a1}, res.Selection, "selection is left as it was")
	assert.Equal(t, 1, res.Graph.EdgeCount())

	// the clipboard is detached: moving the original does not change it
	moved := a1
	moved.X = 1000
	_, err = s.UpdateNodePosition(moved)
	require.NoError(t, err)
	clip2, _ := s.Clipboard()
	assert.Equal(t, clip, clip2)
}

func TestGraphStore_CopyUsesCurrentRecordAndOffset(t *testing.T) {
	s, _ := newStore(t, twoNodes(t), editor.WithPasteOffset(5, -5), editor.WithSelectPasted())
	a2 := mustNode(t, s.Graph(), "a2")
	_, err := s.SelectNode(&a2)
	require.NoError(t, err)

	_, err = s.CopySelected()
	require.NoError(t, err)
	clip, _ := s.Clipboard()
	assert.Equal(t, 305.0, clip.X)
	assert.Equal(t, 35.0, clip.Y)

	res, err := s.PasteSelected()
	require.NoError(t, err)
	sel, ok := res.Selection.(editor.NodeSelection)
	require.True(t, ok)
	assert.Equal(t, res.Graph.Nodes()[2], sel.Node, "pasted node is selected")
}

func TestGraphStore_CopyEdgeWarns(t *testing.T) {
	s, logs := newStore(t, twoNodes(t))
	_, err := s.SelectEdge(core.Edge{Source: "a1", Target: "a2"})
	require.NoError(t, err)

	res, err := s.CopySelected()
	require.NoError(t, err)
	assert.Equal(t, editor.WarnCannotCopyEdge, res.Warning)
	_, ok := s.Clipboard()
	assert.False(t, ok, "clipboard unchanged")
	assert.Equal(t, 1, logs.FilterMessage(string(editor.WarnCannotCopyEdge)).Len())
}

func TestGraphStore_CopyNothingSelected(t *testing.T) {
	s, _ := newStore(t, twoNodes(t))

	_, err := s.CopySelected()
	require.ErrorIs(t, err, editor.ErrNoSelection)
	_, ok := s.Clipboard()
	assert.False(t, ok)
}

func TestGraphStore_PasteEmptyClipboard(t *testing.T) {
	s, logs := newStore(t, twoNodes(t))
	before := s.Graph()

	res, err := s.PasteSelected()
	require.NoError(t, err)
	assert.Equal(t, editor.WarnNothingToPaste, res.Warning)
	assert.Equal(t, before, res.Graph)
	assert.Equal(t, 1, logs.FilterMessage(string(editor.WarnNothingToPaste)).Len())
}

func TestGraphStore_Undo(t *testing.T) {
	s, logs := newStore(t, twoNodes(t))
	_, err := s.CreateNode(0, 0)
	require.NoError(t, err)
	before := s.State()

	res, err := s.Undo()
	require.ErrorIs(t, err, editor.ErrUnsupported)
	assert.Equal(t, before.Graph, res.Graph)
	assert.Equal(t, 1, logs.FilterMessage("undo is not supported").Len())
}

func TestGraphStore_SnapshotsAreImmutable(t *testing.T) {
	s, _ := newStore(t, twoNodes(t))
	first := s.Graph()

	_, err := s.CreateNode(1, 1)
	require.NoError(t, err)
	_, err = s.DeleteNode(mustNode(t, s.Graph(), "a1"))
	require.NoError(t, err)

	assert.Equal(t, 2, first.NodeCount())
	assert.Equal(t, 1, first.EdgeCount())
	assert.Equal(t, 2, s.Graph().NodeCount())
	assert.Equal(t, 0, s.Graph().EdgeCount())
}

func TestGraphStore_Observer(t *testing.T) {
	rec := &recorder{}
	s, _ := newStore(t, twoNodes(t), editor.WithObserver(rec))
	a1 := mustNode(t, s.Graph(), "a1")

	_, _ = s.CreateEdge(a1, a1)
	_, _ = s.PasteSelected()
	_, _ = s.Undo()
	_, _ = s.CreateNode(0, 0)

	assert.Equal(t, []editor.Operation{editor.OpCreateEdge, editor.OpPasteSelected, editor.OpUndo, editor.OpCreateNode}, rec.ops)
	assert.Equal(t, []editor.Outcome{editor.OutcomeNoop, editor.OutcomeWarning, editor.OutcomeError, editor.OutcomeOK}, rec.outcomes)
}
