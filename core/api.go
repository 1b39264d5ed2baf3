// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and lookups over a Graph snapshot.
// Policy:
//   - No mutation here; slices handed out are copies.
//   - Lookups are linear scans in insertion order: the first match wins, which is what
//     makes key lookups well defined when parallel edges are allowed.

package core

// Nodes returns a copy of the node sequence in insertion order.
// Complexity: O(V).
func (g Graph) Nodes() []Node {
	return append(make([]Node, 0, len(g.nodes)), g.nodes...)
}

// Edges returns a copy of the edge sequence in insertion order.
// Complexity: O(E).
func (g Graph) Edges() []Edge {
	return append(make([]Edge, 0, len(g.edges)), g.edges...)
}

// NodeCount returns the number of nodes. O(1).
func (g Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges. O(1).
func (g Graph) EdgeCount() int { return len(g.edges) }

// NodeIndex returns the sequence position of the node with the given id, or -1.
// Complexity: O(V).
func (g Graph) NodeIndex(id string) int {
	for i := range g.nodes {
		if g.nodes[i].ID == id {
			return i
		}
	}

	return -1
}

// Node returns the node with the given id.
func (g Graph) Node(id string) (Node, bool) {
	i := g.NodeIndex(id)
	if i < 0 {
		return Node{}, false
	}

	return g.nodes[i], true
}

// HasNode reports whether a node with the given id exists (empty id ⇒ false).
func (g Graph) HasNode(id string) bool {
	return id != "" && g.NodeIndex(id) >= 0
}

// EdgeIndex returns the position of the first edge with the given key, or -1.
// Complexity: O(E).
func (g Graph) EdgeIndex(k EdgeKey) int {
	for i := range g.edges {
		if g.edges[i].Source == k.Source && g.edges[i].Target == k.Target {
			return i
		}
	}

	return -1
}

// Edge returns the first edge with the given key.
func (g Graph) Edge(k EdgeKey) (Edge, bool) {
	i := g.EdgeIndex(k)
	if i < 0 {
		return Edge{}, false
	}

	return g.edges[i], true
}

// HasEdge reports whether at least one edge source→target exists.
func (g Graph) HasEdge(k EdgeKey) bool { return g.EdgeIndex(k) >= 0 }

// IncidentEdges returns, in insertion order, every edge whose source or target is id.
// Complexity: O(E).
func (g Graph) IncidentEdges(id string) []Edge {
	var out []Edge
	for i := range g.edges {
		if g.edges[i].Source == id || g.edges[i].Target == id {
			out = append(out, g.edges[i])
		}
	}

	return out
}
