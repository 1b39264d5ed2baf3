package server

import (
	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/editor"
	"github.com/katalvlaran/digraph/snapshot"
)

// Selection kinds on the wire.
const (
	selectionNone = "none"
	selectionNode = "node"
	selectionEdge = "edge"
)

type stateResponse struct {
	Graph     snapshot.Document `json:"graph"`
	Selection selectionResponse `json:"selection"`
	Warning   string            `json:"warning,omitempty"`
}

type selectionResponse struct {
	Kind string     `json:"kind"`
	Node *core.Node `json:"node,omitempty"`
	Edge *core.Edge `json:"edge,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type createNodeRequest struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

type updateNodeRequest struct {
	Title   string       `json:"title"`
	Type    core.TypeTag `json:"type"`
	Subtype core.TypeTag `json:"subtype"`
	X       float64      `json:"x"`
	Y       float64      `json:"y"`
}

type selectNodeRequest struct {
	ID string `json:"id" validate:"required"`
}

type edgeRequest struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
}

type swapEdgeRequest struct {
	Source    string `json:"source" validate:"required"`
	Target    string `json:"target" validate:"required"`
	NewSource string `json:"newSource" validate:"required"`
	NewTarget string `json:"newTarget" validate:"required"`
}

func newStateResponse(res editor.Result) stateResponse {
	out := stateResponse{
		Graph:     snapshot.FromGraph(res.Graph),
		Selection: selectionResponse{Kind: selectionNone},
		Warning:   res.Warning.String(),
	}
	switch sel := res.Selection.(type) {
	case editor.NodeSelection:
		n := sel.Node
		out.Selection = selectionResponse{Kind: selectionNode, Node: &n}
	case editor.EdgeSelection:
		e := sel.Edge
		out.Selection = selectionResponse{Kind: selectionEdge, Edge: &e}
	}

	return out
}
