// SPDX-License-Identifier: MIT
// Package: octree/builder
//
// impl_chain.go - Chain(n): strictly increasing x1, random x2..x4.
//
// Loaded into a tree, every point lands on the top chain, producing the
// longest possible chain; teardown and search must stay iterative on it.
//
// Contract:
//   - n ≥ MinPoints (else ErrTooFewPoints).
//   - cfg.rng non-nil (else ErrNeedRandSource).
//   - x1 of point i is first + i*cfg.step, first drawn from the CoordFn.
//
// Complexity: O(n) time and space.

package builder

// Chain returns a Generator of n points with strictly increasing x1.
func Chain(n int) Generator {
	return func(cfg builderConfig) ([]Point, error) {
		if err := validateMin(MethodChain, n, MinPoints); err != nil {
			return nil, err
		}
		if err := validateRand(MethodChain, cfg.rng); err != nil {
			return nil, err
		}

		first := cfg.coordFn(cfg.rng)
		pts := make([]Point, n)
		for i := range pts {
			p := randomPoint(cfg)
			p[0] = first + float64(i)*cfg.step
			pts[i] = p
		}

		return pts, nil
	}
}
