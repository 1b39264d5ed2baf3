// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, EdgeKey and Graph value types, sentinel errors and the NewGraph constructor.
// Policy:
//   - Graph is an immutable snapshot: every transform returns a new Graph value.
//   - Insertion order of nodes and edges is the only ordering; nothing is sorted.
//   - Referential integrity (every edge endpoint is a present node) holds for every Graph
//     obtained through NewGraph or a transform.

package core

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrNotFound is the umbrella sentinel for any missing node or edge.
	ErrNotFound = errors.New("core: not found")

	// ErrNodeNotFound indicates an operation referenced a node id that is not in the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a (source,target) pair that is not in the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyNodeID indicates a node (or an edge endpoint) with an empty id.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNodeID indicates that a node id already exists in the graph.
	ErrDuplicateNodeID = errors.New("core: duplicate node ID")

	// ErrSelfLoop indicates an edge whose source equals its target.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDanglingEdge indicates an edge endpoint that references no node of the graph.
	ErrDanglingEdge = errors.New("core: edge references a missing node")

	// ErrDuplicateEdge indicates a second edge with an existing (source,target) pair
	// while parallel edges are not allowed.
	ErrDuplicateEdge = errors.New("core: parallel edges not allowed")
)

// Entity names reported by NotFoundError.
const (
	EntityNode = "node"
	EntityEdge = "edge"
)

// NotFoundError reports which node id or edge key could not be resolved.
// It matches ErrNotFound and either ErrNodeNotFound or ErrEdgeNotFound under errors.Is.
type NotFoundError struct {
	Entity string // EntityNode or EntityEdge
	Key    string // node id or "source->target"
}

// Error implements error.
func (e *NotFoundError) Error() string {
	return "core: " + e.Entity + " " + strconv.Quote(e.Key) + " not found"
}

// Unwrap exposes both the umbrella and the entity-specific sentinel.
func (e *NotFoundError) Unwrap() []error {
	if e.Entity == EntityEdge {
		return []error{ErrNotFound, ErrEdgeNotFound}
	}

	return []error{ErrNotFound, ErrNodeNotFound}
}

func nodeNotFound(id string) error { return &NotFoundError{Entity: EntityNode, Key: id} }

func edgeNotFound(k EdgeKey) error { return &NotFoundError{Entity: EntityEdge, Key: k.String()} }

// TypeTag is an opaque type label for nodes and edges. The core only compares tags for
// equality; their meaning (shape, color, marker) belongs to the renderer.
type TypeTag string

// Tags of the bundled node/edge type configuration.
const (
	EmptyType           TypeTag = "empty"
	SpecialType         TypeTag = "special"
	SkinnyType          TypeTag = "skinny"
	PolyType            TypeTag = "poly"
	SpecialChildSubtype TypeTag = "specialChild"

	EmptyEdgeType   TypeTag = "emptyEdge"
	SpecialEdgeType TypeTag = "specialEdge"
)

// NodeTypes lists the node tags of the bundled configuration.
var NodeTypes = []TypeTag{EmptyType, SpecialType, SkinnyType, PolyType}

// EdgeTypes lists the edge tags of the bundled configuration.
var EdgeTypes = []TypeTag{EmptyEdgeType, SpecialEdgeType}

// Node is a uniquely identified vertex with a display position.
//
// ID is the node's sole identity. X and Y are stored verbatim; the core never computes them.
type Node struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Type    TypeTag `json:"type"`
	Subtype TypeTag `json:"subtype,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// Edge is a directed connection between two node ids.
// Its identity is the ordered pair (Source, Target); see Key.
type Edge struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Type       TypeTag `json:"type"`
	HandleText string  `json:"handleText,omitempty"`
}

// EdgeKey is the identity of an edge.
type EdgeKey struct {
	Source string
	Target string
}

// Key returns the identity of e.
func (e Edge) Key() EdgeKey { return EdgeKey{Source: e.Source, Target: e.Target} }

// String renders the key as "source->target".
func (k EdgeKey) String() string { return k.Source + "->" + k.Target }

// Graph is an immutable snapshot of ordered nodes and edges.
//
// The zero value is an empty, valid graph. Slices may be structurally shared between
// snapshots; they are never written after a Graph is returned, so sharing is safe.
type Graph struct {
	nodes []Node
	edges []Edge
}

// NewGraph builds a Graph from an initial snapshot, preserving the given order.
//
// Errors:
//   - ErrEmptyNodeID: a node id or an edge endpoint is empty.
//   - ErrDuplicateNodeID: two nodes share an id.
//   - ErrSelfLoop: an edge has Source == Target.
//   - ErrDanglingEdge: an edge endpoint is not a node of the snapshot.
//
// Parallel edges are accepted: the snapshot is supplied by the embedding application.
// Complexity: O(V+E) time and O(V) extra space.
func NewGraph(nodes []Node, edges []Edge) (Graph, error) {
	g := Graph{
		nodes: append([]Node(nil), nodes...),
		edges: append([]Edge(nil), edges...),
	}
	if err := g.Validate(); err != nil {
		return Graph{}, err
	}

	return g, nil
}

// Validate re-checks every invariant NewGraph enforces.
func (g Graph) Validate() error {
	ids := make(map[string]struct{}, len(g.nodes))
	for i := range g.nodes {
		id := g.nodes[i].ID
		if id == "" {
			return fmt.Errorf("node at index %d: %w", i, ErrEmptyNodeID)
		}
		if _, dup := ids[id]; dup {
			return fmt.Errorf("node %q: %w", id, ErrDuplicateNodeID)
		}
		ids[id] = struct{}{}
	}

	for i := range g.edges {
		e := g.edges[i]
		if e.Source == "" || e.Target == "" {
			return fmt.Errorf("edge at index %d: %w", i, ErrEmptyNodeID)
		}
		if e.Source == e.Target {
			return fmt.Errorf("edge %s: %w", e.Key(), ErrSelfLoop)
		}
		if _, ok := ids[e.Source]; !ok {
			return fmt.Errorf("edge %s: source: %w", e.Key(), ErrDanglingEdge)
		}
		if _, ok := ids[e.Target]; !ok {
			return fmt.Errorf("edge %s: target: %w", e.Key(), ErrDanglingEdge)
		}
	}

	return nil
}
