// File: methods_nodes.go
// Role: Node transforms: ReplaceNode, AppendNode, RemoveNode.
//
// Determinism:
//   - Positions of untouched nodes and edges never change.
//
// AI-Hints (file):
//   - RemoveNode is the only transform that removes edges implicitly (cascade).
//   - Every method returns the receiver unchanged alongside a non-nil error.
package core

import "fmt"

// ReplaceNode replaces the full record of the node with n.ID at its current position.
//
// Implementation:
//   - Stage 1: Reject an empty id (ErrEmptyNodeID).
//   - Stage 2: Locate the node; missing ⇒ *NotFoundError (never inserts).
//   - Stage 3: Copy the node sequence and overwrite position i.
//
// Errors:
//   - ErrEmptyNodeID, ErrNodeNotFound (via *NotFoundError).
//
// Complexity:
//   - Time O(V), Space O(V) for the new sequence; edges are shared.
func (g Graph) ReplaceNode(n Node) (Graph, error) {
	if n.ID == "" {
		return g, ErrEmptyNodeID
	}
	i := g.NodeIndex(n.ID)
	if i < 0 {
		return g, nodeNotFound(n.ID)
	}

	nodes := cloneNodes(g.nodes, 0)
	nodes[i] = n

	return Graph{nodes: nodes, edges: g.edges}, nil
}

// AppendNode appends n to the node sequence.
//
// Errors:
//   - ErrEmptyNodeID if n.ID == "".
//   - ErrDuplicateNodeID if a node with n.ID already exists.
//
// Complexity: O(V).
func (g Graph) AppendNode(n Node) (Graph, error) {
	if n.ID == "" {
		return g, ErrEmptyNodeID
	}
	if g.NodeIndex(n.ID) >= 0 {
		return g, fmt.Errorf("node %q: %w", n.ID, ErrDuplicateNodeID)
	}

	nodes := append(cloneNodes(g.nodes, 1), n)

	return Graph{nodes: nodes, edges: g.edges}, nil
}

// RemoveNode deletes the node with the given id and every incident edge.
//
// Implementation:
//   - Stage 1: Locate the node; missing ⇒ *NotFoundError.
//   - Stage 2: Copy the node sequence without position i.
//   - Stage 3: Filter the edge sequence once, collecting removed edges in order.
//
// Returns:
//   - Graph: the new snapshot, free of any edge referencing id.
//   - []Edge: the cascaded edges, in their former order (nil if none).
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g Graph) RemoveNode(id string) (Graph, []Edge, error) {
	if id == "" {
		return g, nil, ErrEmptyNodeID
	}
	i := g.NodeIndex(id)
	if i < 0 {
		return g, nil, nodeNotFound(id)
	}

	nodes := make([]Node, 0, len(g.nodes)-1)
	nodes = append(nodes, g.nodes[:i]...)
	nodes = append(nodes, g.nodes[i+1:]...)

	var removed []Edge
	edges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if e.Source == id || e.Target == id {
			removed = append(removed, e)
			continue
		}
		edges = append(edges, e)
	}

	return Graph{nodes: nodes, edges: edges}, removed, nil
}

// cloneNodes copies s into a fresh backing array with room for extra appends,
// so that appending never writes into a slice shared with another snapshot.
func cloneNodes(s []Node, extra int) []Node {
	out := make([]Node, len(s), len(s)+extra)
	copy(out, s)

	return out
}
