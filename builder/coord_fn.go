// Package builder provides the coordinate distributions used by the point
// generators.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// CoordFn draws one coordinate from rng. It must be deterministic for a
// given RNG state.
type CoordFn func(rng *rand.Rand) float64

// ConstantCoordFn always yields value.
// Complexity: O(1).
func ConstantCoordFn(value float64) CoordFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformCoordFn samples uniformly in [min, max). Panics if max < min.
// Complexity: O(1).
func UniformCoordFn(min, max float64) CoordFn {
	if max < min {
		panic(fmt.Sprintf("UniformCoordFn: require min ≤ max, got min=%g, max=%g", min, max))
	}
	span := max - min

	return func(rng *rand.Rand) float64 {
		if span == 0 {
			return min
		}

		return min + rng.Float64()*span
	}
}

// NormalCoordFn samples from N(mean, stddev). Panics if stddev < 0.
// Complexity: O(1).
func NormalCoordFn(mean, stddev float64) CoordFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalCoordFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		return rng.NormFloat64()*stddev + mean
	}
}

// GridCoordFn samples uniformly in [min, max) and snaps to multiples of cell,
// which makes points share coordinates far more often than a continuous draw.
// Panics if cell <= 0 or max < min.
func GridCoordFn(min, max, cell float64) CoordFn {
	if cell <= 0 {
		panic(fmt.Sprintf("GridCoordFn: cell must be > 0, got %g", cell))
	}
	uniform := UniformCoordFn(min, max)

	return func(rng *rand.Rand) float64 {
		return math.Floor(uniform(rng)/cell) * cell
	}
}

// WithUniformCoords sets coordinates ∼ U[min,max).
func WithUniformCoords(min, max float64) BuilderOption {
	return WithCoordFn(UniformCoordFn(min, max))
}

// WithNormalCoords sets coordinates ∼ N(mean,stddev).
func WithNormalCoords(mean, stddev float64) BuilderOption {
	return WithCoordFn(NormalCoordFn(mean, stddev))
}

// WithGridCoords sets coordinates snapped to a grid of the given cell size.
func WithGridCoords(min, max, cell float64) BuilderOption {
	return WithCoordFn(GridCoordFn(min, max, cell))
}
