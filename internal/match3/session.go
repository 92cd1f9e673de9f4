package match3

import (
	"fmt"
	"time"
)

// Stats counts what happened during a session.
type Stats struct {
	Swaps        int // swaps that produced a match
	InvalidSwaps int // swaps that were reverted
	Matches      int // match sets cleared, cascades included
	Cascades     int // match sets found after a refill
	MaxCascade   int
	TilesCleared int
}

// TickResult reports what a single Tick did.
type TickResult struct {
	Resolutions []Resolution
	ScoreGained int
	ClickErr    error
	Expired     bool // the timer ran out during this tick
}

// Session ties a cycle to a score and a countdown.
// It is not safe for concurrent use; drive it from a single tick loop.
type Session struct {
	cfg     Config
	board   *Board
	factory *Factory
	cycle   *Cycle
	layout  Layout

	score     int
	remaining time.Duration
	elapsed   time.Duration
	active    bool
	stats     Stats
}

// NewSession validates cfg, fills a fresh board and starts the clock.
func NewSession(cfg Config, rng Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	board := NewBoard(cfg.Width, cfg.Height)
	factory := NewFactory(cfg.Kinds, rng)
	created, err := factory.Fill(board)
	if err != nil {
		return nil, fmt.Errorf("match3: fill board: %w", err)
	}

	cycle, err := NewCycle(board, factory, cfg)
	if err != nil {
		return nil, err
	}
	for _, t := range created {
		cycle.emit(EventCreated, t, t.Pos)
	}

	return &Session{
		cfg:       cfg,
		board:     board,
		factory:   factory,
		cycle:     cycle,
		layout:    cycle.layout,
		remaining: cfg.TimeLimit,
		active:    true,
	}, nil
}

// Tick advances the session by dt. The timer is sampled first, then pending
// phases advance, then click (if any) is handled.
func (s *Session) Tick(dt time.Duration, click *Cell) TickResult {
	var res TickResult

	if s.active {
		s.elapsed += dt
		s.remaining -= dt
		if s.remaining <= 0 {
			s.remaining = 0
			s.active = false
			s.cycle.Stop()
			res.Expired = true
		}
	}

	res.Resolutions = s.cycle.Advance(dt)
	for _, r := range res.Resolutions {
		res.ScoreGained += s.apply(r)
	}

	if click != nil {
		res.ClickErr = s.Select(*click)
	}
	return res
}

// Select forwards a click to the cycle. It fails once the game is over.
func (s *Session) Select(c Cell) error {
	if !s.active {
		return fmt.Errorf("%w: game over", ErrInvalidTransition)
	}
	before := s.cycle.Phase()
	if err := s.cycle.Select(c); err != nil {
		return err
	}
	if before == PhaseAwaitingSelection {
		switch s.cycle.Phase() {
		case PhaseResolving:
			s.stats.Swaps++
		case PhaseReverting:
			s.stats.InvalidSwaps++
		}
	}
	return nil
}

// Deselect drops the current selection.
func (s *Session) Deselect() {
	s.cycle.Deselect()
}

// Stop ends the game immediately, as if the timer had run out.
func (s *Session) Stop() {
	if !s.active {
		return
	}
	s.active = false
	s.cycle.Stop()
}

// apply scores r: every cleared tile is worth ScorePerMatch.
func (s *Session) apply(r Resolution) int {
	n := r.Cells.Len()
	gained := s.cfg.ScorePerMatch * n
	s.score += gained
	s.stats.Matches++
	s.stats.TilesCleared += n
	if r.Cascade > 0 {
		s.stats.Cascades++
	}
	if r.Cascade > s.stats.MaxCascade {
		s.stats.MaxCascade = r.Cascade
	}
	return gained
}

// Score returns the running score.
func (s *Session) Score() int {
	return s.score
}

// Remaining returns the time left on the clock, never below zero.
func (s *Session) Remaining() time.Duration {
	return s.remaining
}

// Elapsed returns the time played so far.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// Active reports whether the game still accepts input.
func (s *Session) Active() bool {
	return s.active
}

// Over reports whether the game has ended and all in-flight work has drained.
func (s *Session) Over() bool {
	return s.cycle.Phase() == PhaseGameOver
}

// Phase returns the cycle phase.
func (s *Session) Phase() Phase {
	return s.cycle.Phase()
}

// Selected returns the selected cell, if any.
func (s *Session) Selected() (Cell, bool) {
	return s.cycle.Selected()
}

// Pending returns the cells about to be cleared, or nil.
func (s *Session) Pending() MatchSet {
	return s.cycle.Pending()
}

// Board returns the board. Callers must not modify it.
func (s *Session) Board() *Board {
	return s.board
}

// Layout returns the world layout of the board.
func (s *Session) Layout() Layout {
	return s.layout
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config {
	return s.cfg
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Fallbacks returns how many initial tokens had to ignore the no-match rule.
func (s *Session) Fallbacks() int {
	return s.factory.Fallbacks()
}

// Events drains the display events recorded since the last call.
func (s *Session) Events() []Event {
	return s.cycle.Events()
}

// Err returns the error that interrupted the cycle, if any.
func (s *Session) Err() error {
	return s.cycle.Err()
}
