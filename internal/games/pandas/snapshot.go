package pandas

import "github.com/vovakirdan/panda-pop/internal/match3"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateDraining    GameStateType = "draining" // time is up, cascades still settling
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
	StateFailed      GameStateType = "failed"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Score     int
	Remaining int64 // milliseconds
	Phase     string
	Cursor    match3.Cell
	Selected  *match3.Cell
	Board     [][]match3.Kind // [x][y], KindNone for empty cells
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Cursor: g.cursor,
		State:  StatePlaying,
	}
	if g.session == nil {
		snap.State = StateFailed
		return snap
	}

	snap.Score = g.session.Score()
	snap.Remaining = g.session.Remaining().Milliseconds()
	snap.Phase = g.session.Phase().String()
	snap.Board = g.session.Board().Kinds()
	if c, ok := g.session.Selected(); ok {
		snap.Selected = &c
	}

	switch {
	case g.setupErr != nil:
		snap.State = StateFailed
	case g.session.Over():
		snap.State = StateGameOver
	case !g.session.Active():
		snap.State = StateDraining
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.paused:
		snap.State = StatePaused
	}
	return snap
}
