// SPDX-License-Identifier: MIT
// Package: octree/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a generator by mutating a builderConfig
// before any point is drawn.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
// Complexity: O(1).
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCoordFn overrides the coordinate distribution. Panics on nil.
// Complexity: O(1).
func WithCoordFn(fn CoordFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCoordFn(nil)")
	}
	return func(c *builderConfig) {
		c.coordFn = fn
	}
}

// WithMaxGroup sets the largest run of points sharing coordinates in Grouped.
// Panics if k < 1.
func WithMaxGroup(k int) BuilderOption {
	if k < 1 {
		panic(fmt.Sprintf("builder: WithMaxGroup(%d), need ≥ 1", k))
	}
	return func(c *builderConfig) {
		c.maxGroup = k
	}
}

// WithSpread sets the query perturbation half-width. Panics if s < 0.
func WithSpread(s float64) BuilderOption {
	if s < 0 {
		panic("builder: WithSpread(s<0)")
	}
	return func(c *builderConfig) {
		c.spread = s
	}
}

// WithMaxTolerance sets the upper bound of query tolerances. Panics if t < 0.
func WithMaxTolerance(t float64) BuilderOption {
	if t < 0 {
		panic("builder: WithMaxTolerance(t<0)")
	}
	return func(c *builderConfig) {
		c.maxTolerance = t
	}
}

// WithStep sets the x1 increment used by Chain. Panics if s <= 0.
func WithStep(s float64) BuilderOption {
	if s <= 0 {
		panic("builder: WithStep(s<=0)")
	}
	return func(c *builderConfig) {
		c.step = s
	}
}
