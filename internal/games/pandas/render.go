package pandas

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/panda-pop/internal/core"
	"github.com/vovakirdan/panda-pop/internal/match3"
)

const (
	glyphToken   = '●'
	glyphPending = '✱'
	glyphPop     = '✸'
	glyphEmpty   = '·'
	blinkTicks   = 8
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Cannot start game", core.ColorRed)
	if g.setupErr != nil {
		dst.DrawTextCentered(y+1, g.setupErr.Error(), core.ColorGray)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// timeLabel formats the clock the way the HUD shows it: whole seconds,
// rounded to nearest, never negative.
func timeLabel(remaining time.Duration) string {
	secs := int(math.Round(max(remaining.Seconds(), 0)))
	return fmt.Sprintf("Time: %02d", secs)
}

func (g *Game) renderHUD(dst *core.Screen) {
	box := g.geo.box
	dst.DrawTextCentered(0, g.Title(), core.ColorBrightWhite)

	timeStr := timeLabel(g.session.Remaining())
	timeColor := core.ColorDefault
	if g.session.Remaining() <= 10*time.Second {
		timeColor = core.ColorRed
	}
	dst.DrawTextStyled(box.X, 1, timeStr, core.Cell{Fg: timeColor, Bold: true})

	scoreStr := fmt.Sprintf("Score: %d", g.session.Score())
	dst.DrawTextStyled(box.Right()-len(scoreStr), 1, scoreStr, core.Cell{Fg: core.ColorYellow, Bold: true})
}

func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(g.geo.box, core.ColorGray)

	board := g.session.Board()
	pending := g.session.Pending()
	selected, hasSel := g.session.Selected()
	blinkOn := (g.tick/blinkTicks)%2 == 0

	for x := range board.Width() {
		for y := range board.Height() {
			c := match3.Cell{X: x, Y: y}
			gx, gy := g.geo.glyphPos(c)

			var bg core.Color
			if hasSel && c == selected {
				bg = core.ColorDarkGray
			}

			glyph := core.Cell{Rune: glyphEmpty, Fg: core.ColorDarkGray, Bg: bg}
			if k := board.KindAt(c); k != match3.KindNone {
				glyph = core.Cell{Rune: glyphToken, Fg: core.TokenColor(int(k)), Bg: bg}
				if pending.Contains(c) && blinkOn {
					glyph.Rune = glyphPending
					glyph.Bold = true
				}
			} else if g.pops[c] > 0 {
				glyph = core.Cell{Rune: glyphPop, Fg: core.ColorBrightWhite, Bold: true}
			}
			dst.SetCell(gx, gy, glyph)

			switch {
			case c == g.cursor:
				dst.SetCell(gx-1, gy, core.Cell{Rune: '[', Fg: core.ColorBrightWhite, Bg: bg, Bold: true})
				dst.SetCell(gx+1, gy, core.Cell{Rune: ']', Fg: core.ColorBrightWhite, Bg: bg, Bold: true})
			case bg != core.ColorDefault:
				dst.SetCell(gx-1, gy, core.Cell{Rune: ' ', Bg: bg})
				dst.SetCell(gx+1, gy, core.Cell{Rune: ' ', Bg: bg})
			}
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := g.geo.box.Bottom() + 1
	dst.DrawTextCentered(y, "arrows: move  enter: select  x: cancel  p: pause  q: quit", core.ColorGray)
}

func (g *Game) renderOverlays(dst *core.Screen) {
	box := g.geo.box
	midY := box.Y + box.H/2

	switch {
	case g.session.Over() || g.setupErr != nil:
		lines := []string{
			"TIME UP",
			fmt.Sprintf("Final score: %d", g.session.Score()),
			"r: restart  q: quit",
		}
		if g.setupErr != nil {
			lines[0] = "GAME STOPPED"
		}
		g.drawPanel(dst, midY-1, lines)
	case !g.session.Active():
		g.drawPanel(dst, midY, []string{"TIME UP"})
	case g.paused:
		g.drawPanel(dst, midY, []string{"PAUSED", "p: resume"})
	}
}

// drawPanel writes lines centred on the screen over a blank backing.
func (g *Game) drawPanel(dst *core.Screen, top int, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	x := (g.screenW - width) / 2
	for i, l := range lines {
		y := top + i
		for dx := range width {
			dst.SetCell(x+dx, y, core.Cell{Rune: ' ', Bg: core.ColorDarkGray})
		}
		style := core.Cell{Fg: core.ColorBrightWhite, Bg: core.ColorDarkGray, Bold: i == 0}
		dst.DrawTextStyled(x+(width-len([]rune(l)))/2, y, l, style)
	}
}
