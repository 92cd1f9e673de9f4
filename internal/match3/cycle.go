package match3

import (
	"fmt"
	"time"
)

// Phase is the state of the resolution cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingSelection
	PhaseSwapping
	PhaseReverting
	PhaseResolving
	PhaseGravity
	PhaseRefilling
	PhaseRechecking
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingSelection:
		return "awaiting_selection"
	case PhaseSwapping:
		return "swapping"
	case PhaseReverting:
		return "reverting"
	case PhaseResolving:
		return "resolving"
	case PhaseGravity:
		return "gravity"
	case PhaseRefilling:
		return "refilling"
	case PhaseRechecking:
		return "rechecking"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// maxStepsPerAdvance bounds the phase changes one Advance call may make, so a
// zero-delay config with endless cascades still yields back to the caller.
const maxStepsPerAdvance = 256

// Resolution is one match set cleared from the board.
// Cascade is 0 for the match made by a swap and counts up for each refill that
// produced further matches.
type Resolution struct {
	Cells   MatchSet
	Cascade int
}

// Cycle owns a board and runs the swap, match, clear, gravity and refill
// sequence. Timed phases are advanced by Advance; nothing runs on its own.
type Cycle struct {
	board   *Board
	factory *Factory
	layout  Layout
	cfg     Config

	phase Phase
	wait  time.Duration

	selected     Cell
	hasSelection bool

	swapA, swapB Cell
	pending      MatchSet
	cascade      int

	stopping bool
	err      error
	events   []Event
}

// NewCycle creates a cycle over a filled board. Only the delays of cfg are used.
func NewCycle(b *Board, f *Factory, cfg Config) (*Cycle, error) {
	if f.Kinds() < 1 {
		return nil, ErrEmptyCandidateSet
	}
	return &Cycle{
		board:   b,
		factory: f,
		layout:  CenteredLayout(b.Width(), b.Height()),
		cfg:     cfg,
	}, nil
}

// Phase returns the current phase.
func (c *Cycle) Phase() Phase {
	return c.phase
}

// Selected returns the selected cell, if any.
func (c *Cycle) Selected() (Cell, bool) {
	return c.selected, c.hasSelection
}

// Pending returns the match set waiting to be cleared, or nil.
func (c *Cycle) Pending() MatchSet {
	return c.pending
}

// Busy reports whether a swap or resolution is in flight.
func (c *Cycle) Busy() bool {
	switch c.phase {
	case PhaseIdle, PhaseAwaitingSelection, PhaseGameOver:
		return false
	}
	return true
}

// Err returns the error that interrupted the cycle, if any.
func (c *Cycle) Err() error {
	return c.err
}

// Events returns and clears the display events recorded since the last call.
func (c *Cycle) Events() []Event {
	ev := c.events
	c.events = nil
	return ev
}

// Select handles a click on cell.
// The first click selects; a click on a non-adjacent cell moves the selection;
// a click on an adjacent cell swaps the two tokens.
func (c *Cycle) Select(cell Cell) error {
	if c.stopping || c.Busy() || c.phase == PhaseGameOver {
		return fmt.Errorf("%w: select in phase %s", ErrInvalidTransition, c.phase)
	}
	t, err := c.board.Get(cell)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("%w: cell %s is empty", ErrInvalidTransition, cell)
	}

	if !c.hasSelection {
		c.selectCell(cell)
		return nil
	}
	if !Adjacent(c.selected, cell) {
		c.clearSelection()
		c.selectCell(cell)
		return nil
	}

	from := c.selected
	c.clearSelection()
	c.swap(from, cell)
	return nil
}

// Deselect drops the current selection. It is a no-op without one.
func (c *Cycle) Deselect() {
	if c.phase == PhaseAwaitingSelection {
		c.clearSelection()
	}
}

// Stop ends the game. Work already in flight is drained by later Advance
// calls before the cycle settles in PhaseGameOver.
func (c *Cycle) Stop() {
	if c.stopping {
		return
	}
	c.stopping = true
	c.clearSelection()
	if !c.Busy() {
		c.phase = PhaseGameOver
	}
}

// Advance moves timed phases forward by dt and returns the match sets cleared.
func (c *Cycle) Advance(dt time.Duration) []Resolution {
	var out []Resolution
	if c.timed() {
		c.wait -= dt
	}
	for steps := 0; c.timed() && c.wait <= 0; steps++ {
		if steps == maxStepsPerAdvance {
			c.wait = 0
			break
		}
		leftover := c.wait
		if r, ok := c.step(); ok {
			out = append(out, r)
		}
		if c.timed() {
			c.wait += leftover
		}
	}
	if c.stopping && !c.Busy() {
		c.phase = PhaseGameOver
	}
	return out
}

// timed reports whether the current phase waits on a delay.
func (c *Cycle) timed() bool {
	switch c.phase {
	case PhaseReverting, PhaseResolving, PhaseGravity, PhaseRefilling, PhaseRechecking:
		return true
	}
	return false
}

// step completes the current timed phase and enters the next one.
func (c *Cycle) step() (Resolution, bool) {
	switch c.phase {
	case PhaseReverting:
		// The inverse swap is not re-checked for matches.
		if err := c.board.Swap(c.swapA, c.swapB); err != nil {
			c.fail(err)
			return Resolution{}, false
		}
		c.emitMove(c.swapA, c.swapB)
		c.emitMove(c.swapB, c.swapA)
		c.phase = PhaseIdle
		c.wait = 0

	case PhaseResolving:
		r := Resolution{Cells: c.pending, Cascade: c.cascade}
		for _, cell := range c.pending.Cells() {
			t, err := c.board.Remove(cell)
			if err != nil || t == nil {
				continue
			}
			c.emit(EventDestroyed, t, cell)
		}
		c.pending = nil
		c.phase = PhaseGravity
		c.wait = c.cfg.ClearDelay + c.cfg.DropDelay
		return r, true

	case PhaseGravity:
		for _, d := range ApplyGravity(c.board) {
			c.events = append(c.events, Event{
				Kind:    EventMoved,
				TokenID: d.Token.ID,
				Token:   d.Token.Kind,
				Cell:    d.To,
				From:    d.From,
				Target:  c.layout.WorldPos(d.To),
			})
		}
		c.phase = PhaseRefilling
		c.wait = 0

	case PhaseRefilling:
		created, err := Refill(c.board, c.factory)
		for _, t := range created {
			c.emit(EventCreated, t, t.Pos)
		}
		if err != nil {
			c.fail(err)
			return Resolution{}, false
		}
		c.phase = PhaseRechecking
		c.wait = c.cfg.SettleDelay

	case PhaseRechecking:
		matches := FindAllMatches(c.board)
		if matches.Len() == 0 {
			c.phase = PhaseIdle
			c.cascade = 0
			c.wait = 0
			break
		}
		c.cascade++
		c.beginResolve(matches)
	}
	return Resolution{}, false
}

// swap exchanges a and b and either starts resolving or schedules the revert.
func (c *Cycle) swap(a, b Cell) {
	c.phase = PhaseSwapping
	if err := c.board.Swap(a, b); err != nil {
		c.fail(err)
		return
	}
	c.emitMove(b, a)
	c.emitMove(a, b)

	// A match at either endpoint counts.
	matches := CheckMatch(c.board, a).Union(CheckMatch(c.board, b))
	if matches.Len() == 0 {
		c.swapA, c.swapB = a, b
		c.phase = PhaseReverting
		c.wait = c.cfg.SwapRevertDelay
		return
	}
	c.cascade = 0
	c.beginResolve(matches)
}

func (c *Cycle) beginResolve(matches MatchSet) {
	c.pending = matches
	for _, cell := range matches.Cells() {
		if t := c.board.at(cell); t != nil {
			c.emit(EventMatched, t, cell)
		}
	}
	c.phase = PhaseResolving
	c.wait = c.cfg.MatchDisplayDelay
}

func (c *Cycle) selectCell(cell Cell) {
	c.selected = cell
	c.hasSelection = true
	c.phase = PhaseAwaitingSelection
	if t := c.board.at(cell); t != nil {
		c.emit(EventSelected, t, cell)
	}
}

func (c *Cycle) clearSelection() {
	if !c.hasSelection {
		return
	}
	if t := c.board.at(c.selected); t != nil {
		c.emit(EventDeselected, t, c.selected)
	}
	c.hasSelection = false
	if c.phase == PhaseAwaitingSelection {
		c.phase = PhaseIdle
	}
}

// fail records err and parks the cycle in Idle so the session can continue.
func (c *Cycle) fail(err error) {
	c.err = err
	c.pending = nil
	c.phase = PhaseIdle
	c.wait = 0
}

// emitMove records that the token now at to arrived from from.
func (c *Cycle) emitMove(from, to Cell) {
	t := c.board.at(to)
	if t == nil {
		return
	}
	c.events = append(c.events, Event{
		Kind:    EventMoved,
		TokenID: t.ID,
		Token:   t.Kind,
		Cell:    to,
		From:    from,
		Target:  c.layout.WorldPos(to),
	})
}

func (c *Cycle) emit(kind EventKind, t *Token, cell Cell) {
	c.events = append(c.events, Event{
		Kind:    kind,
		TokenID: t.ID,
		Token:   t.Kind,
		Cell:    cell,
		Target:  c.layout.WorldPos(cell),
	})
}
