package octree

import "fmt"

// Test bridge: white-box checks over the arena for octree_test.

// CheckStructure verifies that every link of every live node is mirrored,
// that neighbors along an axis share the coordinates of all outer axes, and
// that ascending links never lead to a smaller coordinate.
func CheckStructure[T Number](t *Tree[T]) error {
	live := 0
	for i := range t.nodes {
		n := &t.nodes[i]
		if !n.live {
			continue
		}
		live++
		for l := Link(0); l < numLinks; l++ {
			nb := n.links[l]
			if nb == NoNode {
				continue
			}
			if !t.valid(nb) {
				return fmt.Errorf("node %d: %s link to dead node %d", i, l, nb)
			}
			if back := t.nodes[nb].links[l.Opposite()]; back != NodeID(i) {
				return fmt.Errorf("node %d: %s link to %d not mirrored (got %d)", i, l, nb, back)
			}
			a, p, q := l.Axis(), n.point, t.nodes[nb].point
			for outer := AxisX1; outer < a; outer++ {
				if p[outer] != q[outer] {
					return fmt.Errorf("node %d: %s neighbor %d differs on outer axis %d", i, l, nb, outer)
				}
			}
			if l == ascending(a) && q[a] < p[a] {
				return fmt.Errorf("node %d: %s neighbor %d out of order", i, l, nb)
			}
		}
	}
	if live != t.count {
		return fmt.Errorf("count %d, live nodes %d", t.count, live)
	}

	return nil
}

// ArenaLen reports the number of slots, live or free.
func ArenaLen[T Number](t *Tree[T]) int { return len(t.nodes) }

// TopChainLen counts the nodes on the x1 chain through the root.
func TopChainLen[T Number](t *Tree[T]) int {
	if t.root == NoNode {
		return 0
	}
	cur := t.root
	for t.nodes[cur].links[South] != NoNode {
		cur = t.nodes[cur].links[South]
	}
	n := 1
	for t.nodes[cur].links[North] != NoNode {
		cur = t.nodes[cur].links[North]
		n++
	}

	return n
}

// ReleaseSteps releases t and reports the nodes freed and link steps taken.
func ReleaseSteps[T Number](t *Tree[T]) (freed, steps int) { return t.teardown() }
