// Package match3 implements the board engine of a tile-matching puzzle:
// the grid, token creation, match detection and the swap/resolve/refill cycle.
// It has no platform dependencies so it can be driven by any tick source.
package match3

import "fmt"

// Cell is a grid coordinate. Y=0 is the bottom row.
type Cell struct {
	X, Y int
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Adjacent reports whether a and b are orthogonal neighbours.
func Adjacent(a, b Cell) bool {
	return abs(a.X-b.X)+abs(a.Y-b.Y) == 1
}

// Axis selects a scan direction for FindLine.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String returns a human-readable axis name.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// step returns the unit offset along the axis.
func (a Axis) step() (dx, dy int) {
	if a == Vertical {
		return 0, 1
	}
	return 1, 0
}

// neighbours4 are the orthogonal offsets, in the order right, left, up, down.
var neighbours4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
