// Package pandas is the panda-popping match-3 game: the match3 engine wired
// to the terminal platform's input frames, clock and screen.
package pandas

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/panda-pop/internal/core"
	"github.com/vovakirdan/panda-pop/internal/match3"
	"github.com/vovakirdan/panda-pop/internal/registry"
)

// Mode selects the ruleset.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeBlitz   Mode = "blitz" // half the time limit
)

const (
	idClassic = "pandas"
	idBlitz   = "pandas_blitz"
)

var (
	configMu     sync.RWMutex
	engineConfig = match3.DefaultConfig()
)

// SetConfig replaces the engine settings used by games created afterwards.
func SetConfig(cfg match3.Config) {
	configMu.Lock()
	defer configMu.Unlock()
	engineConfig = cfg
}

// Config returns the engine settings new games will use.
func Config() match3.Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return engineConfig
}

func init() {
	registry.Register(idClassic, func() registry.Game { return New() })
	registry.Register(idBlitz, func() registry.Game { return NewBlitz() })
}

// Game implements registry.Game on top of a match3.Session.
type Game struct {
	mode    Mode
	engine  match3.Config
	seed    int64
	tick    uint64
	dt      time.Duration
	session *match3.Session

	cursor match3.Cell
	paused bool

	// pops marks cells cleared recently, counted down in ticks.
	pops     map[match3.Cell]int
	popTicks int

	screenW  int
	screenH  int
	geo      geometry
	tooSmall bool

	setupErr error
}

// New creates a classic game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBlitz creates a blitz game.
func NewBlitz() *Game {
	return &Game{mode: ModeBlitz}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeBlitz {
		return idBlitz
	}
	return idClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBlitz {
		return "Panda Pop (Blitz)"
	}
	return "Panda Pop"
}

// Description implements registry.Describer.
func (g *Game) Description() string {
	if g.mode == ModeBlitz {
		return "swap pandas into lines of three, half the clock"
	}
	return "swap pandas into lines of three before time runs out"
}

// Reset starts a new game with a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine = Config()
	if g.mode == ModeBlitz {
		g.engine.TimeLimit /= 2
	}
	g.seed = cfg.Seed
	g.tick = 0
	g.dt = cfg.TickDuration()
	g.paused = false
	g.pops = make(map[match3.Cell]int)
	g.popTicks = max(cfg.TickRate/4, 1)

	g.session, g.setupErr = match3.NewSession(g.engine, rand.New(rand.NewSource(cfg.Seed)))
	g.cursor = match3.Cell{X: (g.engine.Width - 1) / 2, Y: (g.engine.Height - 1) / 2}
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	if g.session != nil {
		g.session.Events() // the opening fill is not animated
	}
}

// Resize follows a terminal resize without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
	g.geo = newGeometry(width, g.engine.Width, g.engine.Height)
	g.tooSmall = !g.geo.fits(width, height)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.setupErr != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.Over() {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)
	if in.Has(core.ActionCancel) {
		g.session.Deselect()
	}

	click := g.click(in)
	// Rejected clicks (busy board, off-board, game over) are dropped.
	res := g.session.Tick(g.dt, click)
	if err := g.session.Err(); err != nil {
		g.setupErr = err
	}

	g.decayPops()
	for _, ev := range g.session.Events() {
		if ev.Kind == match3.EventDestroyed {
			g.pops[ev.Cell] = g.popTicks
		}
	}

	return core.StepResult{State: g.State(), ScoreGained: res.ScoreGained}
}

func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y++
	case in.Has(core.ActionDown):
		g.cursor.Y--
	case in.Has(core.ActionLeft):
		g.cursor.X--
	case in.Has(core.ActionRight):
		g.cursor.X++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, g.engine.Width-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, g.engine.Height-1)
}

// click returns the cell picked this tick: the first mouse press wins over
// the keyboard. Off-board presses are passed on for the engine to reject.
func (g *Game) click(in core.InputFrame) *match3.Cell {
	if len(in.Clicks) > 0 {
		p := in.Clicks[0]
		c := g.geo.cellAt(p.X, p.Y)
		if c.X >= 0 && c.X < g.engine.Width && c.Y >= 0 && c.Y < g.engine.Height {
			g.cursor = c
		}
		return &c
	}
	if in.Has(core.ActionSelect) {
		c := g.cursor
		return &c
	}
	return nil
}

func (g *Game) decayPops() {
	for c, n := range g.pops {
		if n <= 1 {
			delete(g.pops, c)
			continue
		}
		g.pops[c] = n - 1
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:     g.session.Score(),
		Remaining: g.session.Remaining(),
		GameOver:  g.session.Over() || g.setupErr != nil,
		Paused:    g.paused || g.tooSmall,
	}
}

// RunStats implements registry.StatsReporter.
func (g *Game) RunStats() registry.RunStats {
	if g.session == nil {
		return registry.RunStats{Seed: g.seed}
	}
	st := g.session.Stats()
	return registry.RunStats{
		Seed:         g.seed,
		Duration:     g.session.Elapsed(),
		Swaps:        st.Swaps,
		InvalidSwaps: st.InvalidSwaps,
		Matches:      st.Matches,
		Cascades:     st.Cascades,
		MaxCascade:   st.MaxCascade,
		TilesCleared: st.TilesCleared,
	}
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error {
	return g.setupErr
}
