// Package builder defines shared constants used by the point generators.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodUniform is the canonical name for the Uniform generator.
	MethodUniform = "Uniform"
	// MethodGrouped is the canonical name for the Grouped generator.
	MethodGrouped = "Grouped"
	// MethodChain is the canonical name for the Chain generator.
	MethodChain = "Chain"
	// MethodQueries is the canonical name for the Queries generator.
	MethodQueries = "Queries"
	// MethodPerturb is the canonical name for Perturb.
	MethodPerturb = "Perturb"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinPoints is the smallest batch any generator produces.
const MinPoints = 1

//-----------------------------------------------------------------------------
// Default Distributions
//-----------------------------------------------------------------------------

const (
	// DefaultCoordMin and DefaultCoordMax bound the default uniform coordinate.
	DefaultCoordMin = -50.0
	DefaultCoordMax = 50.0
	// DefaultMaxGroup is the largest run Grouped emits with shared coordinates.
	DefaultMaxGroup = 10
	// DefaultSpread is the half-width of the query perturbation U[-s,s).
	DefaultSpread = 1.5
	// DefaultMaxTolerance bounds query tolerances U[0,t).
	DefaultMaxTolerance = 3.0
	// DefaultStep is the x1 increment between consecutive Chain points.
	DefaultStep = 1.0
)
