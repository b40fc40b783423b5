// SPDX-License-Identifier: MIT
// Package: octree/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Generators attach method context with builderErrorf and %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates a requested batch size below MinPoints.
var ErrTooFewPoints = errors.New("builder: too few points")

// ErrNeedRandSource indicates that a generator requires a non-nil *rand.Rand
// in the resolved builderConfig (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownMode indicates a ShareMode or VaryMode outside its defined range.
var ErrUnknownMode = errors.New("builder: unknown mode")

// builderErrorf prefixes the formatted message with the method name.
// A %w verb in format keeps the wrapped sentinel visible to errors.Is.
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
