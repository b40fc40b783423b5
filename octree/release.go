package octree

// noLink marks the node Release started from.
const noLink Link = numLinks

// Release frees every node without recursion and returns how many were
// freed, which equals Count before the call. Freed slots are recycled by
// later inserts; the tree is empty and usable afterwards.
//
// The node graph is a tree, so the walk needs no visited set. Each node
// entered records in its back field the link leading to where it was
// entered from:
//
//  1. From the current node, step through any link other than back until
//     reaching an end node (no link but back).
//  2. Free the end node, clear its parent's link to it and continue from
//     the parent.
//  3. The start node has no back link; freeing it empties the tree.
//
// Every link is walked once down and once up.
// Complexity: O(n) time, O(1) extra memory.
func (t *Tree[T]) Release() int {
	freed, _ := t.teardown()

	return freed
}

// teardown implements Release and also reports the number of link steps.
func (t *Tree[T]) teardown() (freed, steps int) {
	if t.root == NoNode {
		return 0, 0
	}
	cur := t.root
	t.nodes[cur].back = noLink
	for cur != NoNode {
		if l, nx := t.child(cur); nx != NoNode {
			t.nodes[nx].back = l.Opposite()
			cur = nx
			steps++

			continue
		}

		parent := NoNode
		if back := t.nodes[cur].back; back != noLink {
			parent = t.nodes[cur].links[back]
			t.nodes[parent].links[back.Opposite()] = NoNode
			steps++
		}
		t.release(cur)
		freed++
		cur = parent
	}
	t.root = NoNode

	return freed, steps
}

// child returns any link of id other than its back link, deepest axis
// first, or NoNode when id is an end node.
func (t *Tree[T]) child(id NodeID) (Link, NodeID) {
	n := &t.nodes[id]
	for l := Link(numLinks - 1); ; l-- {
		if l != n.back && n.links[l] != NoNode {
			return l, n.links[l]
		}
		if l == 0 {
			return 0, NoNode
		}
	}
}
