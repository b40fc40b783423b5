// SPDX-License-Identifier: MIT
// Package: octree/builder
//
// impl_queries.go - tolerance queries derived from stored points.
//
// Model:
//   - Perturb moves a point by v ∼ U[-spread, spread) on one axis (VaryX1..VaryX4),
//     or by an independent draw on every axis (VaryAll).
//   - Queries pairs every input point with a random VaryMode, a perturbed copy
//     and a tolerance t ∼ U[0, maxTolerance).
//
// Contract:
//   - cfg.rng non-nil (else ErrNeedRandSource).
//   - mode within [VaryX1, VaryAll] (else ErrUnknownMode).
//   - Queries on an empty slice returns an empty slice, no error.
//
// Complexity: O(n) time and space for Queries, O(1) for Perturb.

package builder

// VaryMode selects which coordinates Perturb moves.
type VaryMode int

const (
	VaryX1 VaryMode = iota
	VaryX2
	VaryX3
	VaryX4
	VaryAll

	numVaryModes
)

// Query is a probe point with its per-axis tolerance.
type Query struct {
	Point     Point
	Tolerance float64
	Mode      VaryMode
}

// Perturb returns a copy of p moved according to mode.
func Perturb(p Point, mode VaryMode, opts ...BuilderOption) (Point, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateRand(MethodPerturb, cfg.rng); err != nil {
		return p, err
	}

	return perturb(cfg, p, mode)
}

// Queries derives one Query from every point.
func Queries(points []Point, opts ...BuilderOption) ([]Query, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateRand(MethodQueries, cfg.rng); err != nil {
		return nil, err
	}

	out := make([]Query, len(points))
	for i, p := range points {
		mode := VaryMode(cfg.rng.Intn(int(numVaryModes)))
		tol := cfg.rng.Float64() * cfg.maxTolerance
		q, err := perturb(cfg, p, mode)
		if err != nil {
			return nil, err
		}
		out[i] = Query{Point: q, Tolerance: tol, Mode: mode}
	}

	return out, nil
}

func perturb(cfg builderConfig, p Point, mode VaryMode) (Point, error) {
	switch {
	case mode >= VaryX1 && mode <= VaryX4:
		p[mode] += variation(cfg)
	case mode == VaryAll:
		for a := range p {
			p[a] += variation(cfg)
		}
	default:
		return p, builderErrorf(MethodPerturb, "vary mode %d: %w", int(mode), ErrUnknownMode)
	}

	return p, nil
}

// variation draws v ∼ U[-spread, spread).
func variation(cfg builderConfig) float64 {
	return (2*cfg.rng.Float64() - 1) * cfg.spread
}
