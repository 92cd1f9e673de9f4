package match3

import (
	"math/rand"
	"testing"
	"time"
)

// boardFromRows builds a board from rows written top to bottom.
// Digits are kinds, '.' is an empty cell.
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	height := len(rows)
	width := len(rows[0])
	b := NewBoard(width, height)
	var id uint64
	for i, row := range rows {
		if len(row) != width {
			t.Fatalf("row %d has width %d, want %d", i, len(row), width)
		}
		y := height - 1 - i
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			id++
			if err := b.Set(Cell{X: x, Y: y}, &Token{ID: id, Kind: Kind(ch - '0')}); err != nil {
				t.Fatalf("Set: %v", err)
			}
		}
	}
	return b
}

// rows renders a board back to the boardFromRows format.
func rows(b *Board) []string {
	out := make([]string, b.Height())
	for i := range out {
		y := b.Height() - 1 - i
		line := make([]byte, b.Width())
		for x := range line {
			k := b.KindAt(Cell{X: x, Y: y})
			if k == KindNone {
				line[x] = '.'
			} else {
				line[x] = byte('0' + k)
			}
		}
		out[i] = string(line)
	}
	return out
}

// seqRand returns the values in seq in order, modulo n, and repeats.
type seqRand struct {
	seq []int
	i   int
}

func (r *seqRand) Intn(n int) int {
	v := r.seq[r.i%len(r.seq)]
	r.i++
	return v % n
}

// testConfig uses whole-second delays so tests can step phases exactly.
func testConfig() Config {
	return Config{
		Width:             4,
		Height:            3,
		Kinds:             5,
		TimeLimit:         60 * time.Second,
		ScorePerMatch:     100,
		MatchDisplayDelay: time.Second,
		ClearDelay:        time.Second,
		DropDelay:         0,
		SettleDelay:       time.Second,
		SwapRevertDelay:   time.Second,
	}
}

// newTestSession wraps a prepared board in a session.
func newTestSession(t *testing.T, cfg Config, b *Board, seed int64) *Session {
	t.Helper()
	return newScriptedSession(t, cfg, b, rand.New(rand.NewSource(seed)))
}

// newScriptedSession is newTestSession with the refill kinds drawn from rng.
func newScriptedSession(t *testing.T, cfg Config, b *Board, rng Rand) *Session {
	t.Helper()
	cfg.Width, cfg.Height = b.Width(), b.Height()
	f := NewFactory(cfg.Kinds, rng)
	f.nextID = 1000
	c, err := NewCycle(b, f, cfg)
	if err != nil {
		t.Fatalf("NewCycle: %v", err)
	}
	return &Session{
		cfg:       cfg,
		board:     b,
		factory:   f,
		cycle:     c,
		layout:    c.layout,
		remaining: cfg.TimeLimit,
		active:    true,
	}
}

// swapBoard has no matches; swapping (2,0) with (3,0) makes "000" on the bottom row.
func swapBoard(t *testing.T) *Board {
	return boardFromRows(t,
		"1234",
		"3410",
		"0010",
	)
}
