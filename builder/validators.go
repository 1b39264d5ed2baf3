package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// validateMin ensures that got ≥ min, returning ErrTooFewVertices with method context.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// drawType picks one tag from pool. A single-entry pool needs no RNG.
// Complexity: O(1).
func drawType(method string, cfg builderConfig, pool []core.TypeTag) (core.TypeTag, error) {
	if len(pool) == 1 {
		return pool[0], nil
	}
	if cfg.rng == nil {
		return "", fmt.Errorf("%s: %d types to choose from: %w", method, len(pool), ErrNeedRandSource)
	}

	return pool[cfg.rng.Intn(len(pool))], nil
}
