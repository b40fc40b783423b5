package octree_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/octree/octree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInsert_EmptyTreeRoot verifies the first point becomes an unlinked root.
func TestInsert_EmptyTreeRoot(t *testing.T) {
	tr := octree.New[float64]()
	tr.Insert(pt{1, 2, 3, 4})
	require.Equal(t, 1, tr.Count())
	root := tr.Root()
	require.NotEqual(t, octree.NoNode, root)
	for l := octree.North; l <= octree.NE; l++ {
		assert.Equal(t, octree.NoNode, tr.Neighbor(root, l), "link %s", l)
	}
}

// TestInsert_RandomOrderKeepsChainsSorted inserts in arbitrary order and
// checks mirroring and ordering after every insertion.
func TestInsert_RandomOrderKeepsChainsSorted(t *testing.T) {
	pts := grouped(t, 400, 21)
	rand.New(rand.NewSource(22)).Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })

	tr := octree.New[float64]()
	for i, p := range pts {
		tr.Insert(p)
		require.Equal(t, i+1, tr.Count())
		if i%50 == 0 {
			requireStructure(t, tr)
		}
	}
	requireStructure(t, tr)
	for _, p := range pts {
		id, _ := tr.Find(p, 0)
		got, ok := tr.Point(id)
		require.True(t, ok, "point %v lost", p)
		assert.Equal(t, p, got)
	}
}

// TestInsert_Descending feeds reverse-sorted input, which attaches below the
// chain head on every axis.
func TestInsert_Descending(t *testing.T) {
	tr := octree.New[int]()
	for x := 10; x > 0; x-- {
		tr.Insert(octree.NewPoint(x, 0, 0, 0))
		tr.Insert(octree.NewPoint(5, x, 0, 0))
		tr.Insert(octree.NewPoint(5, 5, x, 0))
		tr.Insert(octree.NewPoint(5, 5, 5, x))
	}
	assert.Equal(t, 40, tr.Count())
	requireStructure(t, tr)
	assert.Equal(t, 10, octree.TopChainLen(tr))
}

// TestInsert_Duplicates verifies identical points are kept as distinct nodes.
func TestInsert_Duplicates(t *testing.T) {
	tr := octree.New[float64]()
	p := pt{1, 1, 1, 1}
	tr.Init([]pt{p, p, p}, octree.Lexicographic[float64])
	tr.Insert(p)
	assert.Equal(t, 4, tr.Count())
	requireStructure(t, tr)

	ids := map[octree.NodeID]bool{}
	tr.Each(func(id octree.NodeID, q pt) bool {
		assert.Equal(t, p, q)
		ids[id] = true
		return true
	})
	assert.Len(t, ids, 4)
	assert.Equal(t, 4, tr.Release())
}

// TestInsert_NaNPanics verifies an unordered coordinate is a fatal violation.
func TestInsert_NaNPanics(t *testing.T) {
	tr := octree.New[float64]()
	tr.Insert(pt{0, 0, 0, 0})

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		tr.Insert(pt{0, math.NaN(), 0, 0})
	}()
	err, ok := recovered.(error)
	require.True(t, ok, "panic value must be an error, got %v", recovered)
	assert.True(t, errors.Is(err, octree.ErrUnorderedCoordinate))
	assert.Equal(t, 1, tr.Count(), "no node is allocated for a rejected point")
	requireStructure(t, tr)
}

// TestInsert_NaNIntoEmptyTreePanics verifies the first point is checked too,
// so a NaN can never become the root and poison later inserts.
func TestInsert_NaNIntoEmptyTreePanics(t *testing.T) {
	for _, p := range []pt{
		{math.NaN(), 0, 0, 0},
		{0, 0, 0, math.NaN()},
	} {
		tr := octree.New[float64]()
		var recovered any
		func() {
			defer func() { recovered = recover() }()
			tr.Insert(p)
		}()
		err, ok := recovered.(error)
		require.True(t, ok, "panic value must be an error, got %v", recovered)
		assert.True(t, errors.Is(err, octree.ErrUnorderedCoordinate))
		assert.Equal(t, 0, tr.Count())
		assert.Equal(t, octree.NoNode, tr.Root())

		assert.NotPanics(t, func() { tr.Insert(pt{1, 2, 3, 4}) })
		id, _ := tr.Find(pt{1, 2, 3, 4}, 0)
		assert.Equal(t, tr.Root(), id)
	}
}

// TestInsert_IntegerCoordinates exercises the generic path with int32.
func TestInsert_IntegerCoordinates(t *testing.T) {
	tr := octree.New[int32]()
	var pts []octree.Point[int32]
	for i := int32(0); i < 50; i++ {
		pts = append(pts, octree.NewPoint(i%5, i%3, i%7, i))
	}
	tr.Init(pts, octree.Lexicographic[int32])
	requireStructure(t, tr)
	for _, p := range pts {
		id, _ := tr.Find(p, 0)
		got, _ := tr.Point(id)
		assert.Equal(t, p, got)
	}
}
