// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// impl_grid.go - implementation of GridNodes(n) constructor.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices).
//   - Adds nodes cfg.idFn(0..n-1) titled "Node 1".."Node n" in ascending order.
//   - Layout: the column counter advances on every node and resets to 0 (with a new
//     row) on every ordinal divisible by rowLength, so row 0 starts at column 1.
//   - Node types are drawn from cfg.nodeTypes.
//
// Complexity:
//   - Time: O(n). Space: O(n) for the appended nodes.

package builder

import (
	"strconv"

	"github.com/katalvlaran/digraph/core"
)

// GridNodes returns a Constructor that appends n generated nodes.
func GridNodes(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodGridNodes, n, MinGeneratedNodes); err != nil {
			return err
		}

		var col, row int
		for idx := 0; idx < n; idx++ {
			ordinal := idx + 1
			if ordinal%cfg.rowLength == 0 {
				row++
				col = 0
			} else {
				col++
			}

			tag, err := drawType(MethodGridNodes, cfg, cfg.nodeTypes)
			if err != nil {
				return err
			}
			d.nodes = append(d.nodes, core.Node{
				ID:    cfg.idFn(idx),
				Title: "Node " + strconv.Itoa(ordinal),
				Type:  tag,
				X:     cfg.spacing * float64(col),
				Y:     cfg.spacing * float64(row),
			})
		}

		return nil
	}
}
