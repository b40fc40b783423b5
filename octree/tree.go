package octree

import (
	"fmt"
	"slices"
)

// node is one arena slot. Dead slots sit on the free list.
type node[T Number] struct {
	point Point[T]
	links [numLinks]NodeID
	back  Link // link toward the parent during Release
	live  bool
}

// Tree is the four-axis chained index. The zero value is not usable; call New.
// A Tree is not safe for concurrent use.
type Tree[T Number] struct {
	nodes []node[T] // arena
	free  []NodeID  // released slots, reused LIFO by insert
	root  NodeID
	count int
}

// New returns an empty tree with Count 0.
func New[T Number]() *Tree[T] {
	return &Tree[T]{root: NoNode}
}

// Count returns the number of live nodes.
// Complexity: O(1).
func (t *Tree[T]) Count() int { return t.count }

// Root returns the node Find starts from, or NoNode for an empty tree.
func (t *Tree[T]) Root() NodeID { return t.root }

// Point returns the point stored at id. ok is false for NoNode, out-of-range
// or released ids.
func (t *Tree[T]) Point(id NodeID) (p Point[T], ok bool) {
	if !t.valid(id) {
		return p, false
	}

	return t.nodes[id].point, true
}

// Neighbor returns the node linked from id through l, or NoNode.
func (t *Tree[T]) Neighbor(id NodeID, l Link) NodeID {
	if !t.valid(id) || l >= numLinks {
		return NoNode
	}

	return t.nodes[id].links[l]
}

// Each calls fn for every live node in arena order until fn returns false.
// fn must not mutate the tree.
// Complexity: O(arena size).
func (t *Tree[T]) Each(fn func(id NodeID, p Point[T]) bool) {
	for i := range t.nodes {
		if !t.nodes[i].live {
			continue
		}
		if !fn(NodeID(i), t.nodes[i].point) {
			return
		}
	}
}

// Reset drops every node at once, returning the tree to its empty state.
// NodeIDs issued before Reset become invalid.
func (t *Tree[T]) Reset() {
	t.nodes = nil
	t.free = nil
	t.root = NoNode
	t.count = 0
}

// Init bulk-loads points. The slice is sorted in place by cmp (a nil cmp
// keeps the caller's order), every element is inserted in that order, and
// the root is moved to the middle of the resulting x1 chain.
// An empty slice is a no-op.
// Complexity: O(n log n) for the sort; appends are O(1) each on sorted input.
func (t *Tree[T]) Init(points []Point[T], cmp Comparator[T]) {
	if len(points) == 0 {
		return
	}
	if cmp != nil {
		slices.SortFunc(points, cmp)
	}

	hint := t.root
	for _, p := range points {
		hint = t.insert(p, hint)
	}
	t.balance()
}

// balance walks the top chain to its north tail, counts the hops back to the
// south head, then parks the root half that many hops north of the head.
func (t *Tree[T]) balance() {
	cur := t.root
	for next := t.nodes[cur].links[North]; next != NoNode; next = t.nodes[cur].links[North] {
		cur = next
	}
	hops := 0
	for next := t.nodes[cur].links[South]; next != NoNode; next = t.nodes[cur].links[South] {
		cur = next
		hops++
	}
	for i := 0; i < hops/2; i++ {
		cur = t.nodes[cur].links[North]
	}
	t.root = cur
}

func (t *Tree[T]) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && t.nodes[id].live
}

// alloc places p in a fresh or recycled slot with no links.
func (t *Tree[T]) alloc(p Point[T]) NodeID {
	n := node[T]{point: p, live: true}
	for i := range n.links {
		n.links[i] = NoNode
	}
	t.count++
	if k := len(t.free); k > 0 {
		id := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[id] = n

		return id
	}
	t.nodes = append(t.nodes, n)

	return NodeID(len(t.nodes) - 1)
}

// release kills id and pushes its slot on the free list. Links of neighbors
// pointing at id are the caller's business.
func (t *Tree[T]) release(id NodeID) {
	if !t.valid(id) {
		panic(fmt.Errorf("%w: node %d", ErrDoubleFree, id))
	}
	t.nodes[id] = node[T]{}
	t.free = append(t.free, id)
	t.count--
}
