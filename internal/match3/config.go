package match3

import (
	"fmt"
	"time"
)

// Config holds everything a Session needs at construction.
type Config struct {
	Width         int
	Height        int
	Kinds         int
	TimeLimit     time.Duration
	ScorePerMatch int

	// DropSpeed is passed through for renderers; the engine ignores it.
	DropSpeed float64

	MatchDisplayDelay time.Duration // hold before matched tokens are destroyed
	ClearDelay        time.Duration // destroy effect before gravity
	DropDelay         time.Duration // pause before gravity runs
	SettleDelay       time.Duration // pause after refill before re-checking
	SwapRevertDelay   time.Duration // hold before a non-matching swap is undone
}

// DefaultConfig returns the classic 7x7, 60 second setup.
func DefaultConfig() Config {
	return Config{
		Width:             7,
		Height:            7,
		Kinds:             6,
		TimeLimit:         60 * time.Second,
		ScorePerMatch:     100,
		DropSpeed:         5,
		MatchDisplayDelay: 800 * time.Millisecond,
		ClearDelay:        300 * time.Millisecond,
		DropDelay:         200 * time.Millisecond,
		SettleDelay:       500 * time.Millisecond,
		SwapRevertDelay:   500 * time.Millisecond,
	}
}

// minKinds is the fewest token kinds a session accepts.
const minKinds = 2

// Validate checks the config for values the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Kinds < minKinds:
		// One kind matches on every refill, so a cascade could never end.
		return fmt.Errorf("%w: need at least %d token kinds, got %d", ErrInvalidConfig, minKinds, c.Kinds)
	case c.TimeLimit <= 0:
		return fmt.Errorf("%w: time limit must be positive, got %s", ErrInvalidConfig, c.TimeLimit)
	case c.ScorePerMatch < 0:
		return fmt.Errorf("%w: score per match must not be negative, got %d", ErrInvalidConfig, c.ScorePerMatch)
	case c.MatchDisplayDelay < 0 || c.ClearDelay < 0 || c.DropDelay < 0 || c.SettleDelay < 0 || c.SwapRevertDelay < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	}
	return nil
}
