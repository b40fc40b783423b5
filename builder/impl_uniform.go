// SPDX-License-Identifier: MIT
// Package: octree/builder
//
// impl_uniform.go - Uniform(n): n points with independent coordinates.
//
// Contract:
//   - n ≥ MinPoints (else ErrTooFewPoints).
//   - cfg.rng non-nil (else ErrNeedRandSource).
//   - Draw order per point: x1, x2, x3, x4.
//
// Complexity: O(n) time and space.

package builder

// Uniform returns a Generator of n points whose coordinates are drawn
// independently from the configured CoordFn.
func Uniform(n int) Generator {
	return func(cfg builderConfig) ([]Point, error) {
		if err := validateMin(MethodUniform, n, MinPoints); err != nil {
			return nil, err
		}
		if err := validateRand(MethodUniform, cfg.rng); err != nil {
			return nil, err
		}

		pts := make([]Point, n)
		for i := range pts {
			pts[i] = randomPoint(cfg)
		}

		return pts, nil
	}
}
