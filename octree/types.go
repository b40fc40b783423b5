package octree

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Dimensions is the number of coordinates of a Point.
const Dimensions = 4

// Number is the set of coordinate types a Point may carry.
type Number interface {
	constraints.Integer | constraints.Float
}

// Axis selects one coordinate: AxisX1 is the outermost sort order, AxisX4 the innermost.
type Axis int

const (
	AxisX1 Axis = iota
	AxisX2
	AxisX3
	AxisX4
)

// Point is an immutable 4-tuple of coordinates. Equality compares all four.
type Point[T Number] [Dimensions]T

// NewPoint builds a Point from its four coordinates.
func NewPoint[T Number](x1, x2, x3, x4 T) Point[T] {
	return Point[T]{x1, x2, x3, x4}
}

func (p Point[T]) X1() T { return p[AxisX1] }
func (p Point[T]) X2() T { return p[AxisX2] }
func (p Point[T]) X3() T { return p[AxisX3] }
func (p Point[T]) X4() T { return p[AxisX4] }

// At returns the coordinate on axis a.
func (p Point[T]) At(a Axis) T { return p[a] }

// Within reports whether |q.xi - p.xi| <= tol holds on every axis.
// A negative tol never matches.
// Complexity: O(1).
func (p Point[T]) Within(q Point[T], tol T) bool {
	for a := AxisX1; a <= AxisX4; a++ {
		if !(absDiff(p[a], q[a]) <= tol) {
			return false
		}
	}

	return true
}

// SquaredDistance returns the sum of squared per-axis differences.
// It is not used by Find, whose acceptance test is Within.
func SquaredDistance[T Number](a, b Point[T]) T {
	var sum T
	for i := range a {
		d := absDiff(a[i], b[i])
		sum += d * d
	}

	return sum
}

// ManhattanDistance returns the sum of absolute per-axis differences.
func ManhattanDistance[T Number](a, b Point[T]) T {
	var sum T
	for i := range a {
		sum += absDiff(a[i], b[i])
	}

	return sum
}

// absDiff computes |a-b| without leaving the unsigned range.
func absDiff[T Number](a, b T) T {
	if a < b {
		return b - a
	}

	return a - b
}

// Comparator is a total order over points: negative when a sorts before b,
// zero when they are equivalent, positive otherwise.
type Comparator[T Number] func(a, b Point[T]) int

// Lexicographic orders points by x1, then x2, x3 and x4.
func Lexicographic[T Number](a, b Point[T]) int {
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return 0
}

// NodeID addresses a node inside the arena of the Tree that issued it.
type NodeID int32

// NoNode is the absent node: an empty link, or "not found" from Find.
const NoNode NodeID = -1

// Link names one of the eight neighbor relations of a node.
// Even links ascend along their axis, odd links descend.
type Link uint8

const (
	North Link = iota // x1 ascending
	South             // x1 descending
	West              // x2 ascending
	East              // x2 descending
	NW                // x3 ascending
	SE                // x3 descending
	SW                // x4 ascending
	NE                // x4 descending

	numLinks = 8
)

var linkNames = [numLinks]string{"north", "south", "west", "east", "nw", "se", "sw", "ne"}

// String implements fmt.Stringer.
func (l Link) String() string {
	if l >= numLinks {
		return "invalid"
	}

	return linkNames[l]
}

// Opposite returns the mirror relation: North<->South, West<->East, NW<->SE, SW<->NE.
func (l Link) Opposite() Link { return l ^ 1 }

// Axis reports which coordinate the link orders by.
func (l Link) Axis() Axis { return Axis(l >> 1) }

func ascending(a Axis) Link  { return Link(2 * a) }
func descending(a Axis) Link { return Link(2*a + 1) }
