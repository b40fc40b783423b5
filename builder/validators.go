// Package builder provides validation helpers that enforce the parameter
// contracts of the generators. Each returns an error built by builderErrorf.
package builder

import "math/rand"

// validateMin ensures that got >= min, wrapping ErrTooFewPoints otherwise.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "parameter must be ≥ %d, got %d: %w", min, got, ErrTooFewPoints)
	}

	return nil
}

// validateRand ensures a random source is configured.
// Complexity: O(1).
func validateRand(method string, rng *rand.Rand) error {
	if rng == nil {
		return builderErrorf(method, "%w", ErrNeedRandSource)
	}

	return nil
}
