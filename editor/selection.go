package editor

import "github.com/katalvlaran/digraph/core"

// Selection is the single UI-focused element: exactly one of NoSelection,
// NodeSelection or EdgeSelection. The interface is sealed.
type Selection interface {
	isSelection()
}

// NoSelection means nothing is selected.
type NoSelection struct{}

// NodeSelection holds the selected node record.
type NodeSelection struct {
	Node core.Node
}

// EdgeSelection holds the selected edge record.
type EdgeSelection struct {
	Edge core.Edge
}

func (NoSelection) isSelection()   {}
func (NodeSelection) isSelection() {}
func (EdgeSelection) isSelection() {}

// IsEmpty reports whether s selects nothing (a nil Selection counts as empty).
func IsEmpty(s Selection) bool {
	switch s.(type) {
	case nil, NoSelection:
		return true
	default:
		return false
	}
}

// references reports whether s points at the node id or at one of the given edges.
func references(s Selection, nodeID string, edges []core.Edge) bool {
	switch sel := s.(type) {
	case NodeSelection:
		return nodeID != "" && sel.Node.ID == nodeID
	case EdgeSelection:
		for _, e := range edges {
			if e.Key() == sel.Edge.Key() {
				return true
			}
		}
	}

	return false
}
