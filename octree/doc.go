// Package octree implements a four-axis chained point index: a container over
// points with four orthogonal numeric coordinates supporting bulk load,
// single-point insertion and approximate lookup within an independent
// per-coordinate tolerance.
//
// What:
//
//   - Every stored point lives in one Node of an arena owned by the Tree.
//   - A Node carries eight links, one ascending/descending pair per axis:
//     North/South (x1), West/East (x2), NW/SE (x3), SW/NE (x4).
//   - The graph is a nested chain-of-chains. The top chain is sorted by x1;
//     within an x1-equal group a chain sorted by x2 hangs off the node where
//     the group begins; the same holds for x3 inside x1,x2-equal groups and
//     for x4 inside x1,x2,x3-equal groups.
//   - Duplicate points are stored as distinct nodes.
//
// Why:
//
//   - Data sets whose points share coordinate subsets (grids, sensor logs,
//     quantised features) collapse into short chains per shared prefix.
//   - Lookups accept a tolerance per axis instead of a metric radius.
//
// Complexity:
//
//   - Init:    O(n log n) sort + O(n) appends for sorted input, Memory: O(n).
//   - Insert:  O(L) where L is the length of the chains walked.
//   - Find:    O(n) worst case, O(1) extra memory (four frames at most).
//   - Release: O(n) for any shape, O(1) extra memory.
//
// Options:
//
//   - WithStart(id) starts Find at a node other than the root.
//
// Errors:
//
//   - ErrUnorderedCoordinate: Insert met a coordinate with no total order (NaN).
//   - ErrDoubleFree: a node was released twice.
//
// Both are invariant violations and surface as panics wrapping the sentinel.
// Ordinary misuse is not an error: empty bulk input is a no-op, and an empty
// tree or a negative tolerance makes Find report NoNode.
//
// Tree is not safe for concurrent use; SyncTree guards one with a RWMutex.
package octree
