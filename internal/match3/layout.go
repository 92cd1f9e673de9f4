package match3

import "math"

// Point is a position in world space, where one cell is one unit.
type Point struct {
	X, Y float64
}

// Layout maps cells to world positions. The board is centred on the origin.
type Layout struct {
	OffsetX float64
	OffsetY float64
}

// CenteredLayout returns the layout for a width x height board centred on (0,0).
func CenteredLayout(width, height int) Layout {
	return Layout{
		OffsetX: -float64(width-1) / 2,
		OffsetY: -float64(height-1) / 2,
	}
}

// WorldPos returns the world anchor of c.
func (l Layout) WorldPos(c Cell) Point {
	return Point{X: float64(c.X) + l.OffsetX, Y: float64(c.Y) + l.OffsetY}
}

// CellAt returns the cell nearest to p. The result is not bounds-checked.
func (l Layout) CellAt(p Point) Cell {
	return Cell{
		X: int(math.Round(p.X - l.OffsetX)),
		Y: int(math.Round(p.Y - l.OffsetY)),
	}
}
