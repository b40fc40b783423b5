// SPDX-License-Identifier: MIT
// Package: octree/builder
//
// Package builder produces deterministic batches of four-axis points and
// tolerance queries for tests, benchmarks and examples of the octree package.
//
// What:
//
//   - Uniform: independent coordinates drawn from a CoordFn.
//   - Grouped: runs of 1..maxGroup points sharing one of fifteen coordinate
//     subsets (ShareMode), the data shape the chained index is built for.
//   - Chain: strictly increasing x1, the worst case for chain length.
//   - Queries: one query per point, perturbed on one axis or on all four,
//     each with its own tolerance.
//
// Options:
//
//   - WithSeed / WithRand:     random source (required by every generator).
//   - WithCoordFn and friends: coordinate distribution (default U[-50,50)).
//   - WithMaxGroup:            upper bound of a Grouped run (default 10).
//   - WithSpread:              query perturbation half-width (default 1.5).
//   - WithMaxTolerance:        query tolerance upper bound (default 3).
//   - WithStep:                x1 increment of Chain (default 1).
//
// Errors:
//
//   - ErrTooFewPoints:   n < 1.
//   - ErrNeedRandSource: no random source configured.
//   - ErrUnknownMode:    ShareMode or VaryMode out of range.
//
// Option constructors panic on meaningless values; generators return errors
// wrapped with the method name, so errors.Is works on all of them.
package builder
