// File: store.go
// Role: GraphStore, the owner of the canonical graph, the selection and the clipboard.
//
// Every operation:
//   - runs synchronously and either fully applies or leaves the store unchanged;
//   - returns the post-operation Result (graph, selection, warning);
//   - notifies the Observer once.
//
// GraphStore is not safe for concurrent use: gestures arrive one at a time.
package editor

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/digraph/core"
)

// Result is the state a renderer consumes after an operation.
type Result struct {
	Graph     core.Graph
	Selection Selection
	Warning   Warning
}

// GraphStore owns one graph snapshot, the current selection and the clipboard.
type GraphStore struct {
	graph     core.Graph
	selection Selection
	clipboard *core.Node

	cfg storeConfig
	log *zap.Logger
}

// NewGraphStore returns a store seeded with the initial snapshot, nothing selected and an
// empty clipboard.
func NewGraphStore(initial core.Graph, opts ...Option) *GraphStore {
	cfg := newStoreConfig(opts...)

	return &GraphStore{
		graph:     initial,
		selection: NoSelection{},
		cfg:       cfg,
		log:       cfg.logger.Named("graphstore"),
	}
}

// State returns the current graph and selection.
func (s *GraphStore) State() Result {
	return Result{Graph: s.graph, Selection: s.selection}
}

// Graph returns the current snapshot.
func (s *GraphStore) Graph() core.Graph { return s.graph }

// Selection returns the current selection.
func (s *GraphStore) Selection() Selection { return s.selection }

// Clipboard returns a copy of the clipboard node, if any.
func (s *GraphStore) Clipboard() (core.Node, bool) {
	if s.clipboard == nil {
		return core.Node{}, false
	}

	return *s.clipboard, true
}

// UpdateNodePosition replaces the stored record of node.ID with node, at the same
// sequence position. A selected node with that id is refreshed to the new record.
//
// Errors:
//   - *core.NotFoundError when no node has node.ID (nothing is inserted).
func (s *GraphStore) UpdateNodePosition(node core.Node) (Result, error) {
	next, err := s.graph.ReplaceNode(node)
	if err != nil {
		return s.fail(OpUpdateNodePosition, fmt.Errorf("update node position: %w", err))
	}

	s.graph = next
	if sel, ok := s.selection.(NodeSelection); ok && sel.Node.ID == node.ID {
		s.selection = NodeSelection{Node: node}
	}
	s.log.Debug("node moved", zap.String("node_id", node.ID), zap.Float64("x", node.X), zap.Float64("y", node.Y))

	return s.done(OpUpdateNodePosition, OutcomeOK, WarnNone), nil
}

// SelectNode selects the stored node with node.ID, or clears the selection when node is nil.
func (s *GraphStore) SelectNode(node *core.Node) (Result, error) {
	if node == nil {
		s.selection = NoSelection{}
		return s.done(OpSelectNode, OutcomeOK, WarnNone), nil
	}

	stored, ok := s.graph.Node(node.ID)
	if !ok {
		return s.fail(OpSelectNode, fmt.Errorf("select node: %w", nodeNotFound(node.ID)))
	}
	s.selection = NodeSelection{Node: stored}

	return s.done(OpSelectNode, OutcomeOK, WarnNone), nil
}

// SelectEdge selects the stored edge with the (source,target) pair of edge.
func (s *GraphStore) SelectEdge(edge core.Edge) (Result, error) {
	stored, ok := s.graph.Edge(edge.Key())
	if !ok {
		return s.fail(OpSelectEdge, fmt.Errorf("select edge: %w", edgeNotFound(edge.Key())))
	}
	s.selection = EdgeSelection{Edge: stored}

	return s.done(OpSelectEdge, OutcomeOK, WarnNone), nil
}

// CreateNode appends an untitled node at (x, y) with a fresh id and a type chosen by the
// NodeTypePolicy. The selection is not changed.
func (s *GraphStore) CreateNode(x, y float64) (Result, error) {
	node := core.Node{
		ID:   s.cfg.ids.NextID(s.graph.HasNode),
		Type: s.cfg.nodeType.NodeType(),
		X:    x,
		Y:    y,
	}

	next, err := s.graph.AppendNode(node)
	if err != nil {
		return s.fail(OpCreateNode, fmt.Errorf("create node: %w", err))
	}
	s.graph = next
	s.log.Debug("node created", zap.String("node_id", node.ID), zap.String("type", string(node.Type)))

	return s.done(OpCreateNode, OutcomeOK, WarnNone), nil
}

// DeleteNode removes the node with node.ID and every edge incident to it.
//
// Selection:
//   - cleared unconditionally by default;
//   - with WithStickySelection, cleared only if it referenced the node or a removed edge.
func (s *GraphStore) DeleteNode(node core.Node) (Result, error) {
	next, removed, err := s.graph.RemoveNode(node.ID)
	if err != nil {
		return s.fail(OpDeleteNode, fmt.Errorf("delete node: %w", err))
	}

	s.graph = next
	if !s.cfg.stickySelection || references(s.selection, node.ID, removed) {
		s.selection = NoSelection{}
	}
	s.log.Debug("node deleted", zap.String("node_id", node.ID), zap.Int("cascaded_edges", len(removed)))

	return s.done(OpDeleteNode, OutcomeOK, WarnNone), nil
}

// CreateEdge connects source to target and selects the new edge.
//
// Behavior highlights:
//   - source.ID == target.ID is a silent no-op: no error, no warning, nothing changes.
//   - The edge type comes from the EdgeTypePolicy applied to the stored source node.
//   - An existing (source,target) pair yields WarnDuplicateEdge and selects the existing
//     edge, unless WithParallelEdges is set.
//
// Errors:
//   - *core.NotFoundError when an endpoint is missing.
func (s *GraphStore) CreateEdge(source, target core.Node) (Result, error) {
	if source.ID == target.ID {
		s.log.Debug("self-loop ignored", zap.String("node_id", source.ID))
		return s.done(OpCreateEdge, OutcomeNoop, WarnNone), nil
	}

	stored, ok := s.graph.Node(source.ID)
	if !ok {
		return s.fail(OpCreateEdge, fmt.Errorf("create edge: %w", nodeNotFound(source.ID)))
	}
	edge := core.Edge{
		Source: source.ID,
		Target: target.ID,
		Type:   s.cfg.edgeType.EdgeType(stored),
	}

	next, err := s.graph.AppendEdge(edge, s.edgeOptions()...)
	if errors.Is(err, core.ErrDuplicateEdge) {
		existing, _ := s.graph.Edge(edge.Key())
		s.selection = EdgeSelection{Edge: existing}
		s.log.Warn(string(WarnDuplicateEdge), zap.String("source", edge.Source), zap.String("target", edge.Target))
		return s.done(OpCreateEdge, OutcomeWarning, WarnDuplicateEdge), nil
	}
	if err != nil {
		return s.fail(OpCreateEdge, fmt.Errorf("create edge: %w", err))
	}

	s.graph = next
	s.selection = EdgeSelection{Edge: edge}
	s.log.Debug("edge created", zap.String("source", edge.Source), zap.String("target", edge.Target),
		zap.String("type", string(edge.Type)))

	return s.done(OpCreateEdge, OutcomeOK, WarnNone), nil
}

// SwapEdgeEndpoints re-attaches existing to newSource→newTarget at the same sequence
// position, keeping its Type and HandleText, and selects the re-attached edge.
//
// Errors:
//   - *core.NotFoundError when existing or an endpoint is missing.
//   - core.ErrSelfLoop when newSource and newTarget are the same node.
//   - core.ErrDuplicateEdge when the new pair already exists (without WithParallelEdges).
func (s *GraphStore) SwapEdgeEndpoints(newSource, newTarget core.Node, existing core.Edge) (Result, error) {
	old, ok := s.graph.Edge(existing.Key())
	if !ok {
		return s.fail(OpSwapEdgeEndpoints, fmt.Errorf("swap edge: %w", edgeNotFound(existing.Key())))
	}

	swapped := old
	swapped.Source = newSource.ID
	swapped.Target = newTarget.ID

	next, err := s.graph.ReplaceEdge(old.Key(), swapped, s.edgeOptions()...)
	if err != nil {
		return s.fail(OpSwapEdgeEndpoints, fmt.Errorf("swap edge: %w", err))
	}

	s.graph = next
	s.selection = EdgeSelection{Edge: swapped}
	s.log.Debug("edge swapped", zap.Stringer("from", old.Key()), zap.Stringer("to", swapped.Key()))

	return s.done(OpSwapEdgeEndpoints, OutcomeOK, WarnNone), nil
}

// DeleteEdge removes the edge with the (source,target) pair of existing and clears the
// selection (with WithStickySelection, only if it referenced that edge).
func (s *GraphStore) DeleteEdge(existing core.Edge) (Result, error) {
	next, removed, err := s.graph.RemoveEdge(existing.Key())
	if err != nil {
		return s.fail(OpDeleteEdge, fmt.Errorf("delete edge: %w", err))
	}

	s.graph = next
	if !s.cfg.stickySelection || references(s.selection, "", []core.Edge{removed}) {
		s.selection = NoSelection{}
	}
	s.log.Debug("edge deleted", zap.Stringer("edge", removed.Key()))

	return s.done(OpDeleteEdge, OutcomeOK, WarnNone), nil
}

// CopySelected stores a detached copy of the selected node in the clipboard, shifted by
// the paste offset.
//
// Behavior highlights:
//   - Edge selected: WarnCannotCopyEdge, clipboard unchanged.
//   - Nothing selected: ErrNoSelection.
func (s *GraphStore) CopySelected() (Result, error) {
	switch sel := s.selection.(type) {
	case NodeSelection:
		src := sel.Node
		if current, ok := s.graph.Node(src.ID); ok {
			src = current
		}
		copied := src
		copied.X += s.cfg.pasteDX
		copied.Y += s.cfg.pasteDY
		s.clipboard = &copied
		s.log.Debug("node copied", zap.String("node_id", src.ID))
		return s.done(OpCopySelected, OutcomeOK, WarnNone), nil

	case EdgeSelection:
		s.log.Warn(string(WarnCannotCopyEdge), zap.Stringer("edge", sel.Edge.Key()))
		return s.done(OpCopySelected, OutcomeWarning, WarnCannotCopyEdge), nil

	default:
		return s.fail(OpCopySelected, fmt.Errorf("copy: %w", ErrNoSelection))
	}
}

// PasteSelected appends a copy of the clipboard node under a fresh id.
//
// Behavior highlights:
//   - Empty clipboard: WarnNothingToPaste, nothing changes.
//   - The selection is kept unless WithSelectPasted is set.
//   - The clipboard is kept, so repeated pastes stack at the same position.
func (s *GraphStore) PasteSelected() (Result, error) {
	if s.clipboard == nil {
		s.log.Warn(string(WarnNothingToPaste))
		return s.done(OpPasteSelected, OutcomeWarning, WarnNothingToPaste), nil
	}

	node := *s.clipboard
	node.ID = s.cfg.ids.NextID(s.graph.HasNode)

	next, err := s.graph.AppendNode(node)
	if err != nil {
		return s.fail(OpPasteSelected, fmt.Errorf("paste: %w", err))
	}

	s.graph = next
	if s.cfg.selectPasted {
		s.selection = NodeSelection{Node: node}
	}
	s.log.Debug("node pasted", zap.String("node_id", node.ID))

	return s.done(OpPasteSelected, OutcomeOK, WarnNone), nil
}

// Undo is not implemented: it changes nothing and always returns ErrUnsupported.
func (s *GraphStore) Undo() (Result, error) {
	s.log.Warn("undo is not supported")

	return s.fail(OpUndo, ErrUnsupported)
}

// edgeOptions maps the parallel-edge policy onto core edge options.
func (s *GraphStore) edgeOptions() []core.EdgeOption {
	if s.cfg.allowParallel {
		return []core.EdgeOption{core.AllowParallel()}
	}

	return nil
}

func (s *GraphStore) done(op Operation, outcome Outcome, w Warning) Result {
	s.cfg.observer.ObserveOperation(op, outcome, s.graph)

	return Result{Graph: s.graph, Selection: s.selection, Warning: w}
}

func (s *GraphStore) fail(op Operation, err error) (Result, error) {
	s.log.Debug("operation failed", zap.String("op", string(op)), zap.Error(err))
	s.cfg.observer.ObserveOperation(op, OutcomeError, s.graph)

	return Result{Graph: s.graph, Selection: s.selection}, err
}

func nodeNotFound(id string) error {
	return &core.NotFoundError{Entity: core.EntityNode, Key: id}
}

func edgeNotFound(k core.EdgeKey) error {
	return &core.NotFoundError{Entity: core.EntityEdge, Key: k.String()}
}
