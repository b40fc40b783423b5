// SPDX-License-Identifier: MIT
// Package: octree/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, gens...). Resolves cfg once, runs gens in order,
//     concatenates their batches. All generators share one RNG stream.
//   - Public factories are declared in impl_*.go next to their contracts.
//   - Determinism: same options/seed and generator order ⇒ identical batches.
//   - Safety: generators never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/octree/octree"
)

// Point is the coordinate type every generator emits.
type Point = octree.Point[float64]

// Generator draws one batch of points from the resolved builderConfig.
// Generators MUST validate parameters first and return sentinel errors.
type Generator func(cfg builderConfig) ([]Point, error)

// Build resolves the configuration from bopts and concatenates the batches of
// gens in order. Any generator error is wrapped with "Build: %w".
// Complexity: O(len(bopts)) + Σ cost of each generator.
func Build(bopts []BuilderOption, gens ...Generator) ([]Point, error) {
	cfg := newBuilderConfig(bopts...)

	var out []Point
	for i, gen := range gens {
		if gen == nil {
			return nil, fmt.Errorf("Build: nil generator at index %d: %w", i, ErrUnknownMode)
		}
		batch, err := gen(cfg)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		out = append(out, batch...)
	}

	return out, nil
}

// randomPoint draws four independent coordinates.
func randomPoint(cfg builderConfig) Point {
	return octree.NewPoint(cfg.coordFn(cfg.rng), cfg.coordFn(cfg.rng), cfg.coordFn(cfg.rng), cfg.coordFn(cfg.rng))
}
