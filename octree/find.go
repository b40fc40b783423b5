package octree

// FindOption customises a single Find call.
type FindOption func(*findConfig)

type findConfig struct {
	start NodeID
}

// WithStart makes Find begin at id instead of the root. Starting on a node
// off the top chain restricts the search to the chains reachable below it.
func WithStart(id NodeID) FindOption {
	return func(c *findConfig) {
		c.start = id
	}
}

// phase tags where a search frame is in its chain.
type phase uint8

const (
	phaseEnter phase = iota // entry node not yet expanded into the next axis
	phaseLower              // sweeping the descending side
	phaseUpper              // sweeping the ascending side, bounded by the band
)

// frame is the search state on one axis: the node the chain was entered at
// and the node the sweep has reached.
type frame struct {
	entry, cur NodeID
	phase      phase
}

// Find returns some node whose point lies within tol of q on every axis,
// and the number of link hops taken. It returns NoNode when the tree is
// empty, tol is negative, the start node is invalid, or no node reachable
// from the start matches. The returned node is not necessarily the nearest.
//
// The search keeps one frame per axis. A frame sweeps its chain downward to
// the end, then upward from the entry until the chain climbs past the band
// q[axis]+tol. Every visited node inside the band on the frame's axis opens a
// frame on the next axis, entered at that node, which runs to completion
// before the sweep resumes. Started from the root, the search is exhaustive.
// Complexity: O(n) hops worst case, O(1) memory.
func (t *Tree[T]) Find(q Point[T], tol T, opts ...FindOption) (NodeID, int) {
	cfg := findConfig{start: t.root}
	for _, opt := range opts {
		opt(&cfg)
	}
	if t.count == 0 || tol < 0 || !t.valid(cfg.start) {
		return NoNode, 0
	}
	if t.nodes[cfg.start].point.Within(q, tol) {
		return cfg.start, 0
	}

	var (
		stack [Dimensions]frame
		depth = 0
		ops   = 0
	)
	stack[0] = frame{entry: cfg.start, cur: cfg.start}
	for depth >= 0 {
		f := &stack[depth]
		axis := Axis(depth)

		var next NodeID
		switch f.phase {
		case phaseEnter:
			f.phase = phaseLower
			if axis < AxisX4 && t.inBand(f.entry, q, tol, axis) {
				depth++
				stack[depth] = frame{entry: f.entry, cur: f.entry}
			}
			continue
		case phaseLower:
			next = t.nodes[f.cur].links[descending(axis)]
			if next == NoNode {
				f.phase = phaseUpper
				f.cur = f.entry
				continue
			}
		case phaseUpper:
			if c := t.nodes[f.cur].point[axis]; c > q[axis] && c-q[axis] > tol {
				depth--
				continue
			}
			next = t.nodes[f.cur].links[ascending(axis)]
			if next == NoNode {
				depth--
				continue
			}
		}

		f.cur = next
		ops++
		if t.nodes[next].point.Within(q, tol) {
			return next, ops
		}
		if axis < AxisX4 && t.inBand(next, q, tol, axis) {
			depth++
			stack[depth] = frame{entry: next, cur: next}
		}
	}

	return NoNode, ops
}

// inBand reports whether the node's coordinate on axis lies within tol of q.
func (t *Tree[T]) inBand(id NodeID, q Point[T], tol T, axis Axis) bool {
	return absDiff(t.nodes[id].point[axis], q[axis]) <= tol
}
