package pandas

import (
	"github.com/vovakirdan/panda-pop/internal/core"
	"github.com/vovakirdan/panda-pop/internal/match3"
)

const (
	cellW     = 4 // columns per board cell
	cellH     = 2 // rows per board cell
	hudHeight = 3
	footerH   = 2
)

// geometry places the board on screen and maps terminal positions back into
// the engine's world space.
type geometry struct {
	box    core.Rect
	width  int
	height int
	layout match3.Layout
}

func newGeometry(screenW, width, height int) geometry {
	boxW := width*cellW + 3
	boxH := height*cellH + 1
	return geometry{
		box:    core.NewRect((screenW-boxW)/2, hudHeight, boxW, boxH),
		width:  width,
		height: height,
		layout: match3.CenteredLayout(width, height),
	}
}

func (g geometry) fits(screenW, screenH int) bool {
	return g.box.X >= 0 && screenW >= g.box.W && screenH >= hudHeight+g.box.H+footerH
}

// glyphPos returns the screen position of the token drawn for c.
// Row 0 of the board is the bottom row on screen.
func (g geometry) glyphPos(c match3.Cell) (x, y int) {
	return g.box.X + 3 + c.X*cellW, g.box.Y + 1 + (g.height-1-c.Y)*cellH
}

// worldAt converts a screen position to world coordinates.
func (g geometry) worldAt(sx, sy int) match3.Point {
	return match3.Point{
		X: float64(sx-g.box.X-3)/cellW + g.layout.OffsetX,
		Y: float64(g.height-1) - float64(sy-g.box.Y-1)/cellH + g.layout.OffsetY,
	}
}

// cellAt returns the cell under a screen position. The result may lie off
// the board.
func (g geometry) cellAt(sx, sy int) match3.Cell {
	return g.layout.CellAt(g.worldAt(sx, sy))
}
