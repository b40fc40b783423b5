// SPDX-License-Identifier: MIT
// Package: octree/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are named constants; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng          = nil (generators report ErrNeedRandSource)
//   • coordFn      = UniformCoordFn(DefaultCoordMin, DefaultCoordMax)
//   • maxGroup     = DefaultMaxGroup
//   • spread       = DefaultSpread
//   • maxTolerance = DefaultMaxTolerance
//   • step         = DefaultStep

package builder

import "math/rand"

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for all draws; nil means generators refuse to run.
	rng *rand.Rand
	// Coordinate distribution for fresh coordinates.
	coordFn CoordFn
	// Largest run of points sharing coordinates in Grouped (>=1).
	maxGroup int
	// Query perturbation half-width (>=0).
	spread float64
	// Query tolerance upper bound (>=0).
	maxTolerance float64
	// x1 increment in Chain (>0).
	step float64
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		coordFn:      UniformCoordFn(DefaultCoordMin, DefaultCoordMax),
		maxGroup:     DefaultMaxGroup,
		spread:       DefaultSpread,
		maxTolerance: DefaultMaxTolerance,
		step:         DefaultStep,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
