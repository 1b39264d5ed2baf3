// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// impl_chain.go - implementation of Chain() constructor.
//
// Contract:
//   - Emits edges nodes[i-1] → nodes[i] for i=1..len(nodes)-1 over the draft's
//     current node sequence, in stable increasing order.
//   - Edge types are drawn from cfg.edgeTypes. No handle text.
//   - Fewer than two nodes is not an error: nothing is emitted.
//
// Complexity:
//   - Time: O(V). Space: O(V) for the appended edges.

package builder

import "github.com/katalvlaran/digraph/core"

// Chain returns a Constructor that links consecutive draft nodes.
func Chain() Constructor {
	return func(d *draft, cfg builderConfig) error {
		for i := 1; i < len(d.nodes); i++ {
			tag, err := drawType(MethodChain, cfg, cfg.edgeTypes)
			if err != nil {
				return err
			}
			d.edges = append(d.edges, core.Edge{
				Source: d.nodes[i-1].ID,
				Target: d.nodes[i].ID,
				Type:   tag,
			})
		}

		return nil
	}
}
