// File: methods_edges.go
// Role: Edge transforms: AppendEdge, ReplaceEdge, RemoveEdge, plus EdgeOption.
// Determinism:
//   - Edges keep their insertion order; ReplaceEdge writes at the original position.
// AI-HINT (file):
//   - Self-loops are always rejected (ErrSelfLoop); there is no option to enable them.
//   - Parallel edges are rejected (ErrDuplicateEdge) unless AllowParallel() is passed.

package core

import "fmt"

// EdgeOption tunes a single edge transform.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	allowParallel bool
}

// AllowParallel lets an edge transform produce a second edge with an existing (source,target) pair.
func AllowParallel() EdgeOption {
	return func(c *edgeConfig) { c.allowParallel = true }
}

func resolveEdgeOptions(opts []EdgeOption) edgeConfig {
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// AppendEdge appends e to the edge sequence.
//
// Steps:
//  1. Reject empty endpoints (ErrEmptyNodeID) and self-loops (ErrSelfLoop).
//  2. Both endpoints must be present nodes (*NotFoundError for the first missing one).
//  3. Without AllowParallel, an existing (source,target) pair ⇒ ErrDuplicateEdge.
//  4. Copy and append.
//
// Complexity: O(V+E).
func (g Graph) AppendEdge(e Edge, opts ...EdgeOption) (Graph, error) {
	if err := g.checkEndpoints(e); err != nil {
		return g, err
	}
	cfg := resolveEdgeOptions(opts)
	if !cfg.allowParallel && g.HasEdge(e.Key()) {
		return g, fmt.Errorf("edge %s: %w", e.Key(), ErrDuplicateEdge)
	}

	edges := make([]Edge, len(g.edges), len(g.edges)+1)
	copy(edges, g.edges)
	edges = append(edges, e)

	return Graph{nodes: g.nodes, edges: edges}, nil
}

// ReplaceEdge replaces the first edge keyed k with e, at the same sequence position.
// The key of the edge changes when e has different endpoints; this is a delete and an
// insert at the same position.
//
// Errors:
//   - *NotFoundError if no edge has key k, or if an endpoint of e is missing.
//   - ErrEmptyNodeID, ErrSelfLoop for invalid endpoints.
//   - ErrDuplicateEdge if e.Key() differs from k, already exists, and AllowParallel is absent.
//
// Complexity: O(V+E).
func (g Graph) ReplaceEdge(k EdgeKey, e Edge, opts ...EdgeOption) (Graph, error) {
	i := g.EdgeIndex(k)
	if i < 0 {
		return g, edgeNotFound(k)
	}
	if err := g.checkEndpoints(e); err != nil {
		return g, err
	}
	cfg := resolveEdgeOptions(opts)
	if !cfg.allowParallel && e.Key() != k && g.HasEdge(e.Key()) {
		return g, fmt.Errorf("edge %s: %w", e.Key(), ErrDuplicateEdge)
	}

	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	edges[i] = e

	return Graph{nodes: g.nodes, edges: edges}, nil
}

// RemoveEdge deletes the first edge keyed k and returns it.
// Missing key ⇒ *NotFoundError. Complexity: O(E).
func (g Graph) RemoveEdge(k EdgeKey) (Graph, Edge, error) {
	i := g.EdgeIndex(k)
	if i < 0 {
		return g, Edge{}, edgeNotFound(k)
	}
	removed := g.edges[i]

	edges := make([]Edge, 0, len(g.edges)-1)
	edges = append(edges, g.edges[:i]...)
	edges = append(edges, g.edges[i+1:]...)

	return Graph{nodes: g.nodes, edges: edges}, removed, nil
}

// checkEndpoints enforces the per-edge invariants shared by AppendEdge and ReplaceEdge.
func (g Graph) checkEndpoints(e Edge) error {
	if e.Source == "" || e.Target == "" {
		return ErrEmptyNodeID
	}
	if e.Source == e.Target {
		return fmt.Errorf("edge %s: %w", e.Key(), ErrSelfLoop)
	}
	if !g.HasNode(e.Source) {
		return nodeNotFound(e.Source)
	}
	if !g.HasNode(e.Target) {
		return nodeNotFound(e.Target)
	}

	return nil
}
