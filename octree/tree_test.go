package octree_test

import (
	"testing"

	"github.com/katalvlaran/octree/octree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// New / Init / Count
//----------------------------------------------------------------------------//

// TestNew_Empty verifies the empty state.
func TestNew_Empty(t *testing.T) {
	tr := octree.New[float64]()
	assert.Equal(t, 0, tr.Count())
	assert.Equal(t, octree.NoNode, tr.Root())
	_, ok := tr.Point(0)
	assert.False(t, ok)
	assert.Equal(t, octree.NoNode, tr.Neighbor(0, octree.North))
}

// TestInit_EmptyIsNoop verifies that empty input changes nothing.
func TestInit_EmptyIsNoop(t *testing.T) {
	tr := octree.New[float64]()
	tr.Init(nil, octree.Lexicographic[float64])
	tr.Init([]pt{}, octree.Lexicographic[float64])
	assert.Equal(t, 0, tr.Count())
	assert.Equal(t, octree.NoNode, tr.Root())
}

// TestInit_Count verifies Count equals the batch size for several shapes.
func TestInit_Count(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 257, 2000} {
		pts := grouped(t, n, int64(n))
		tr := octree.New[float64]()
		tr.Init(pts, octree.Lexicographic[float64])
		assert.Equal(t, n, tr.Count(), "n=%d", n)
		requireStructure(t, tr)
	}
}

// TestInit_SortsInPlace verifies the caller's slice ends up ordered.
func TestInit_SortsInPlace(t *testing.T) {
	pts := sharedPrefixBatch()
	octree.New[float64]().Init(pts, octree.Lexicographic[float64])
	for i := 1; i < len(pts); i++ {
		assert.LessOrEqual(t, octree.Lexicographic(pts[i-1], pts[i]), 0)
	}
	assert.Equal(t, pt{-26, -17.5, 15, -11}, pts[3])
}

// TestInit_NilComparatorKeepsOrder verifies that a nil comparator skips sorting.
func TestInit_NilComparatorKeepsOrder(t *testing.T) {
	pts := sharedPrefixBatch()
	want := sharedPrefixBatch()
	tr := octree.New[float64]()
	tr.Init(pts, nil)
	assert.Equal(t, want, pts)
	assert.Equal(t, len(pts), tr.Count())
	requireStructure(t, tr)
}

// TestInit_Balance verifies the root lands half the top chain from its head.
func TestInit_Balance(t *testing.T) {
	pts := sortedBatch()
	tr := octree.New[float64]()
	tr.Init(pts, octree.Lexicographic[float64])
	root, ok := tr.Point(tr.Root())
	require.True(t, ok)
	assert.Equal(t, pts[3], root, "8 top-chain nodes: 7 hops, root 3 hops north of the head")
	assert.Equal(t, 8, octree.TopChainLen(tr))

	pts = sharedPrefixBatch()
	tr = octree.New[float64]()
	tr.Init(pts, octree.Lexicographic[float64])
	root, _ = tr.Point(tr.Root())
	assert.Equal(t, pts[0], root, "2 top-chain nodes: root stays on the head")
}

// TestInit_Twice verifies a second bulk load extends the tree.
func TestInit_Twice(t *testing.T) {
	a := grouped(t, 300, 1)
	b := grouped(t, 200, 2)
	tr := octree.New[float64]()
	tr.Init(a, octree.Lexicographic[float64])
	tr.Init(b, octree.Lexicographic[float64])
	assert.Equal(t, 500, tr.Count())
	requireStructure(t, tr)
	for _, p := range append(a, b...) {
		id, _ := tr.Find(p, 0)
		require.NotEqual(t, octree.NoNode, id)
	}
}

//----------------------------------------------------------------------------//
// Accessors / Each / Reset
//----------------------------------------------------------------------------//

// TestEach_VisitsEveryNode verifies Each sees all live points once.
func TestEach_VisitsEveryNode(t *testing.T) {
	pts := sortedBatch()
	tr := octree.New[float64]()
	tr.Init(pts, octree.Lexicographic[float64])

	seen := map[pt]int{}
	tr.Each(func(id octree.NodeID, p pt) bool {
		got, ok := tr.Point(id)
		assert.True(t, ok)
		assert.Equal(t, p, got)
		seen[p]++
		return true
	})
	assert.Len(t, seen, len(pts))

	calls := 0
	tr.Each(func(octree.NodeID, pt) bool {
		calls++
		return calls < 3
	})
	assert.Equal(t, 3, calls, "Each stops when fn returns false")
}

// TestNeighbor_Links verifies the x1 and x2 chains of the sorted fixture.
func TestNeighbor_Links(t *testing.T) {
	pts := sortedBatch()
	tr := octree.New[float64]()
	tr.Init(pts, octree.Lexicographic[float64])

	id, _ := tr.Find(pts[7], 0)
	north := tr.Neighbor(id, octree.North)
	assert.Equal(t, octree.NoNode, north, "(36,-28,..) is the top-chain tail")
	west := tr.Neighbor(id, octree.West)
	p, ok := tr.Point(west)
	require.True(t, ok)
	assert.Equal(t, pts[8], p)
	assert.Equal(t, id, tr.Neighbor(west, octree.East))
	assert.Equal(t, octree.NoNode, tr.Neighbor(id, octree.Link(8)))
}

// TestReset verifies the tree is empty and reusable after Reset.
func TestReset(t *testing.T) {
	tr := octree.New[float64]()
	tr.Init(grouped(t, 100, 4), octree.Lexicographic[float64])
	tr.Reset()
	assert.Equal(t, 0, tr.Count())
	assert.Equal(t, octree.NoNode, tr.Root())
	assert.Equal(t, 0, octree.ArenaLen(tr))

	tr.Insert(pt{1, 2, 3, 4})
	assert.Equal(t, 1, tr.Count())
}
