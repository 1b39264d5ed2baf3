// Package editor implements GraphStore, the mutation API behind the graph editor.
//
// The interaction layer (renderer, HTTP adapter, test) calls exactly one operation per
// user gesture:
//
//	gesture               operation
//	drag release          UpdateNodePosition(node)
//	click node / canvas   SelectNode(&node) / SelectNode(nil)
//	click edge            SelectEdge(edge)
//	shift-click canvas    CreateNode(x, y)
//	delete on node        DeleteNode(node)        // cascades incident edges
//	drag node to node     CreateEdge(source, target)
//	drag edge end         SwapEdgeEndpoints(newSource, newTarget, edge)
//	delete on edge        DeleteEdge(edge)
//	ctrl-c / ctrl-v       CopySelected() / PasteSelected()
//	ctrl-z                Undo()                  // always ErrUnsupported
//
// Each operation returns a Result with the new immutable core.Graph, the new Selection
// and an optional Warning. Warnings (WarnCannotCopyEdge, WarnNothingToPaste,
// WarnDuplicateEdge) are user guidance, not failures. Errors leave the store unchanged:
//
//	*core.NotFoundError  - unknown node id or (source,target) pair (errors.Is core.ErrNotFound)
//	ErrNoSelection       - CopySelected with nothing selected
//	ErrUnsupported       - Undo
//	core.ErrSelfLoop, core.ErrDuplicateEdge - invalid SwapEdgeEndpoints targets
//
// Policies are injected with functional options: WithIDGenerator, WithNodeTypePolicy,
// WithEdgeTypePolicy, WithPasteOffset, WithParallelEdges, WithSelectPasted,
// WithStickySelection, WithLogger and WithObserver.
package editor
