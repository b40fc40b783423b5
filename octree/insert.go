package octree

import "fmt"

// Insert adds p to the tree. Duplicates are stored as distinct nodes.
// It panics with an error wrapping ErrUnorderedCoordinate when a coordinate
// of p compares neither below, equal nor above a stored one (NaN).
// Complexity: O(L), L the total length of the chains walked.
func (t *Tree[T]) Insert(p Point[T]) {
	t.insert(p, t.root)
}

// insert scans from a top-chain node, from, and returns the top-chain node
// the new point hangs under (or the new node itself if it joined the top
// chain), so the next sorted insertion can resume there.
//
// Per axis the scan walks the chain ascending while the next coordinate is
// <= p, then descending while p is below the current one. An equal
// coordinate hands over to the next axis at the current node; otherwise the
// new node is spliced in right after the current node, or attached below the
// chain head. Chains therefore stay sorted whatever the insertion order.
func (t *Tree[T]) insert(p Point[T], from NodeID) NodeID {
	if !ordered(p) {
		panic(fmt.Errorf("%w: %v", ErrUnorderedCoordinate, p))
	}
	if t.root == NoNode {
		t.root = t.alloc(p)

		return t.root
	}
	if !t.valid(from) {
		from = t.root
	}

	cur, top := from, from
	for axis := AxisX1; axis <= AxisX4; axis++ {
		up, down := ascending(axis), descending(axis)
		v := p[axis]
		for next := t.nodes[cur].links[up]; next != NoNode && !(v < t.nodes[next].point[axis]); next = t.nodes[cur].links[up] {
			cur = next
		}
		for v < t.nodes[cur].point[axis] {
			prev := t.nodes[cur].links[down]
			if prev == NoNode {
				break
			}
			cur = prev
		}
		if axis == AxisX1 {
			top = cur
		}

		c := t.nodes[cur].point[axis]
		switch {
		case c == v && axis < AxisX4:
			continue
		case c <= v:
			id := t.spliceAfter(cur, p, up)
			if axis == AxisX1 {
				return id
			}

			return top
		case v < c:
			t.link(cur, t.alloc(p), down)

			return top
		}

		break
	}

	panic(fmt.Errorf("%w: %v", ErrUnorderedCoordinate, p))
}

// ordered reports whether every coordinate of p equals itself, i.e. none is NaN.
func ordered[T Number](p Point[T]) bool {
	for _, v := range p {
		if v != v {
			return false
		}
	}

	return true
}

// spliceAfter places a new node holding p between cur and its neighbor
// through up, and returns its id.
func (t *Tree[T]) spliceAfter(cur NodeID, p Point[T], up Link) NodeID {
	next := t.nodes[cur].links[up]
	id := t.alloc(p)
	if next != NoNode {
		t.link(id, next, up)
	}
	t.link(cur, id, up)

	return id
}

// link sets from.l = to and mirrors to.l.Opposite() = from.
func (t *Tree[T]) link(from, to NodeID, l Link) {
	t.nodes[from].links[l] = to
	t.nodes[to].links[l.Opposite()] = from
}
