// Package octree_test contains shared fixtures for the octree tests.
package octree_test

import (
	"testing"

	"github.com/katalvlaran/octree/builder"
	"github.com/katalvlaran/octree/octree"
	"github.com/stretchr/testify/require"
)

type pt = octree.Point[float64]

// sortedBatch is already in lexicographic order; exact lookups from the
// balanced root cost {3,2,1,0,4,5,6,7,8,9} hops.
func sortedBatch() []pt {
	return []pt{
		{-47, -41, -14, 4},
		{-40, -41, 38, -6},
		{-32, -24, -21, -42},
		{-30, -41, 28, 25},
		{-1.6, -41, -17, -27},
		{3.09, -41, -45, -28},
		{13, -41, 6, -9},
		{36, -28, -26, -10},
		{36, 1.9, -26, -10},
		{36, 39, -26, -10},
	}
}

// sharedPrefixBatch holds nine points equal on x1, x3, x4 plus one outlier.
// After Init sorts it, exact lookups cost {0,1,...,8,1} hops.
func sharedPrefixBatch() []pt {
	return []pt{
		{-26, -48, 15, -11},
		{-26, -33, 15, -11},
		{-26, -27, 15, -11},
		{-26, -8, 15, -11},
		{-26, 9, 15, -11},
		{-26, 10, 15, -11},
		{-26, 17.4, 15, -11},
		{-26, -17.5, 15, -11},
		{-26, 39, 15, -11},
		{-21, 43, -37, -6},
	}
}

// grouped draws n points with shared coordinate runs.
func grouped(t testing.TB, n int, seed int64, extra ...builder.BuilderOption) []pt {
	t.Helper()
	pts, err := builder.Build(append([]builder.BuilderOption{builder.WithSeed(seed)}, extra...), builder.Grouped(n))
	require.NoError(t, err)

	return pts
}

// bruteForce reports whether any point lies within tol of q.
func bruteForce(pts []pt, q pt, tol float64) bool {
	for _, p := range pts {
		if p.Within(q, tol) {
			return true
		}
	}

	return false
}

// requireStructure fails the test if links are broken or chains unsorted.
func requireStructure[T octree.Number](t testing.TB, tr *octree.Tree[T]) {
	t.Helper()
	require.NoError(t, octree.CheckStructure(tr))
}
