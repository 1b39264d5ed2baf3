// Package core defines the Node, Edge and Graph value types of the editor and the
// pure transforms that rewrite a graph snapshot.
//
// A Graph G = (nodes, edges) is an immutable, ordered snapshot:
//
//   - nodes are keyed by Node.ID (unique, non-empty);
//   - edges are keyed by the ordered pair (Source, Target), see EdgeKey;
//   - insertion order is the only ordering and is preserved by every transform;
//   - every edge endpoint is the id of a node in the same snapshot (referential integrity);
//   - self-loops are never stored.
//
// Transforms never mutate the receiver; they return a new Graph:
//
//	// Nodes
//	AppendNode(n Node) (Graph, error)                  // O(V)
//	ReplaceNode(n Node) (Graph, error)                 // O(V), same position
//	RemoveNode(id string) (Graph, []Edge, error)       // O(V+E), cascades incident edges
//
//	// Edges
//	AppendEdge(e Edge, opts ...EdgeOption) (Graph, error)            // O(V+E)
//	ReplaceEdge(k EdgeKey, e Edge, opts ...EdgeOption) (Graph, error) // O(V+E), same position
//	RemoveEdge(k EdgeKey) (Graph, Edge, error)                        // O(E)
//
//	// Queries
//	Nodes(), Edges(), Node(id), Edge(k), NodeIndex(id), EdgeIndex(k),
//	HasNode(id), HasEdge(k), IncidentEdges(id), NodeCount(), EdgeCount()
//
// Errors:
//
//	ErrNotFound         - umbrella for ErrNodeNotFound / ErrEdgeNotFound (*NotFoundError).
//	ErrEmptyNodeID      - node id or edge endpoint is empty.
//	ErrDuplicateNodeID  - node id already present.
//	ErrSelfLoop         - edge source equals target.
//	ErrDanglingEdge     - snapshot edge references a missing node.
//	ErrDuplicateEdge    - parallel edge without AllowParallel().
//
// Because snapshots are values, a renderer can compare the previous and the next Graph
// without worrying that a later mutation rewrites what it already holds.
package core
