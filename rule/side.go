// SPDX-License-Identifier: MIT

package rule

import "fmt"

// Side names one edge of a tile. Grid cells use the same values as neighbor
// directions: the neighbor in direction s touches the cell's side s.
type Side int

const (
	// Top is the edge y = 0, read in increasing x.
	Top Side = iota
	// Left is the edge x = 0, read in increasing y.
	Left
	// Bottom is the edge y = R-1, read in increasing x.
	Bottom
	// Right is the edge x = R-1, read in increasing y.
	Right
)

// NumSides is the number of edges of a tile.
const NumSides = 4

// Sides lists every side in index order.
var Sides = [NumSides]Side{Top, Left, Bottom, Right}

// Valid reports whether s is one of Top, Left, Bottom, Right.
func (s Side) Valid() bool { return s >= Top && s <= Right }

// Opposite returns the side facing s across a shared edge: (s+2) mod 4.
func (s Side) Opposite() Side { return (s + 2) % NumSides }

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// sideEnds returns the first and last position of side s on the unit square
// (coordinates 0 or 1), in the side's reading order.
func sideEnds(s Side) (start, end [2]int) {
	switch s {
	case Top:
		return [2]int{0, 0}, [2]int{1, 0}
	case Left:
		return [2]int{0, 0}, [2]int{0, 1}
	case Bottom:
		return [2]int{0, 1}, [2]int{1, 1}
	default:
		return [2]int{1, 0}, [2]int{1, 1}
	}
}

// sidePoint returns the i-th position of side s on a square of side n.
func sidePoint(s Side, i, n int) (x, y int) {
	switch s {
	case Top:
		return i, 0
	case Left:
		return 0, i
	case Bottom:
		return i, n - 1
	default:
		return n - 1, i
	}
}
