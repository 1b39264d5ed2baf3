package editor

import "github.com/katalvlaran/digraph/core"

// Operation names one GraphStore operation.
type Operation string

// Operations of GraphStore.
const (
	OpUpdateNodePosition Operation = "update_node_position"
	OpSelectNode         Operation = "select_node"
	OpSelectEdge         Operation = "select_edge"
	OpCreateNode         Operation = "create_node"
	OpDeleteNode         Operation = "delete_node"
	OpCreateEdge         Operation = "create_edge"
	OpSwapEdgeEndpoints  Operation = "swap_edge_endpoints"
	OpDeleteEdge         Operation = "delete_edge"
	OpCopySelected       Operation = "copy_selected"
	OpPasteSelected      Operation = "paste_selected"
	OpUndo               Operation = "undo"
)

// Outcome classifies how an operation ended.
type Outcome string

// Outcomes reported to an Observer.
const (
	OutcomeOK      Outcome = "ok"
	OutcomeNoop    Outcome = "noop"
	OutcomeWarning Outcome = "warning"
	OutcomeError   Outcome = "error"
)

// Observer is notified synchronously after every operation with the resulting graph.
// Implementations must not call back into the store.
type Observer interface {
	ObserveOperation(op Operation, outcome Outcome, g core.Graph)
}

type nopObserver struct{}

func (nopObserver) ObserveOperation(Operation, Outcome, core.Graph) {}
