package core

import "encoding/json"

// graphJSON is the wire shape {"nodes":[...],"edges":[...]}.
type graphJSON struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// MarshalJSON encodes the snapshot; empty sequences are written as [] rather than null.
func (g Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(graphJSON{Nodes: g.Nodes(), Edges: g.Edges()})
}

// UnmarshalJSON decodes a snapshot and validates it exactly like NewGraph.
// On error the receiver is left untouched.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var raw graphJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	built, err := NewGraph(raw.Nodes, raw.Edges)
	if err != nil {
		return err
	}
	*g = built

	return nil
}
