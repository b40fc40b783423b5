// SPDX-License-Identifier: MIT
// Package: octree/builder
//
// impl_grouped.go - Grouped(n): runs of points sharing coordinate subsets.
//
// Model:
//   - Repeat until n points exist: draw a run length k ∈ [1, cfg.maxGroup]
//     and a ShareMode m uniformly from the fifteen modes.
//   - Draw the shared coordinates once, then emit k points whose remaining
//     coordinates are fresh draws. ShareNone emits a single fresh point.
//   - The last run is truncated so exactly n points are returned.
//
// Contract:
//   - n ≥ MinPoints (else ErrTooFewPoints).
//   - cfg.rng non-nil (else ErrNeedRandSource).
//
// Complexity: O(n) time and space.

package builder

import "fmt"

// ShareMode selects which coordinates a Grouped run holds fixed.
type ShareMode int

const (
	ShareX1 ShareMode = iota
	ShareX2
	ShareX3
	ShareX4
	ShareX1X2
	ShareX1X3
	ShareX1X4
	ShareX2X3
	ShareX2X4
	ShareX3X4
	ShareX1X2X3
	ShareX2X3X4
	ShareX1X3X4
	ShareX1X2X4
	ShareNone

	numShareModes
)

// shareMasks[m][axis] is true when mode m fixes that axis.
var shareMasks = [numShareModes][4]bool{
	ShareX1:     {true, false, false, false},
	ShareX2:     {false, true, false, false},
	ShareX3:     {false, false, true, false},
	ShareX4:     {false, false, false, true},
	ShareX1X2:   {true, true, false, false},
	ShareX1X3:   {true, false, true, false},
	ShareX1X4:   {true, false, false, true},
	ShareX2X3:   {false, true, true, false},
	ShareX2X4:   {false, true, false, true},
	ShareX3X4:   {false, false, true, true},
	ShareX1X2X3: {true, true, true, false},
	ShareX2X3X4: {false, true, true, true},
	ShareX1X3X4: {true, false, true, true},
	ShareX1X2X4: {true, true, false, true},
	ShareNone:   {},
}

// Shared reports whether mode m fixes axis a (0-based).
func (m ShareMode) Shared(a int) bool {
	if m < 0 || m >= numShareModes || a < 0 || a >= 4 {
		return false
	}

	return shareMasks[m][a]
}

// Grouped returns a Generator of n points built from runs that share
// coordinate subsets.
func Grouped(n int) Generator {
	return func(cfg builderConfig) ([]Point, error) {
		if err := validateMin(MethodGrouped, n, MinPoints); err != nil {
			return nil, err
		}
		if err := validateRand(MethodGrouped, cfg.rng); err != nil {
			return nil, err
		}

		pts := make([]Point, 0, n)
		for len(pts) < n {
			k := 1 + cfg.rng.Intn(cfg.maxGroup)
			mode := ShareMode(cfg.rng.Intn(int(numShareModes)))
			run, err := groupRun(cfg, mode, min(k, n-len(pts)))
			if err != nil {
				return nil, err
			}
			pts = append(pts, run...)
		}

		return pts, nil
	}
}

// Group returns a Generator of exactly k points sharing the coordinates
// selected by mode. ShareNone yields k independent points.
func Group(mode ShareMode, k int) Generator {
	return func(cfg builderConfig) ([]Point, error) {
		if err := validateMin(MethodGrouped, k, MinPoints); err != nil {
			return nil, err
		}
		if err := validateRand(MethodGrouped, cfg.rng); err != nil {
			return nil, err
		}
		if mode == ShareNone {
			pts := make([]Point, k)
			for i := range pts {
				pts[i] = randomPoint(cfg)
			}

			return pts, nil
		}

		return groupRun(cfg, mode, k)
	}
}

// groupRun emits one run of mode. ShareNone runs are a single point.
func groupRun(cfg builderConfig, mode ShareMode, k int) ([]Point, error) {
	if mode < 0 || mode >= numShareModes {
		return nil, builderErrorf(MethodGrouped, "share mode %d: %w", int(mode), ErrUnknownMode)
	}
	if mode == ShareNone {
		return []Point{randomPoint(cfg)}, nil
	}

	shared := randomPoint(cfg)
	run := make([]Point, k)
	for i := range run {
		p := randomPoint(cfg)
		for a := range p {
			if shareMasks[mode][a] {
				p[a] = shared[a]
			}
		}
		run[i] = p
	}

	return run, nil
}

// String implements fmt.Stringer.
func (m ShareMode) String() string {
	if m == ShareNone {
		return "none"
	}
	if m < 0 || m >= numShareModes {
		return fmt.Sprintf("ShareMode(%d)", int(m))
	}
	s := ""
	for a, on := range shareMasks[m] {
		if on {
			s += fmt.Sprintf("x%d", a+1)
		}
	}

	return s
}
