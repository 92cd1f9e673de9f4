// Package config loads the YAML configuration of the panda board and turns it
// into the engine settings used by the game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/panda-pop/internal/core"
	"github.com/vovakirdan/panda-pop/internal/match3"
)

// PandasConfig contains all configuration for the panda board game.
type PandasConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig sets the grid size and the number of token kinds.
type BoardConfig struct {
	Width  int `yaml:"width"  env:"PANDAPOP_WIDTH"`
	Height int `yaml:"height" env:"PANDAPOP_HEIGHT"`
	Kinds  int `yaml:"kinds"  env:"PANDAPOP_KINDS"`
}

// TimingConfig holds the clock and the delays between resolution phases.
type TimingConfig struct {
	TimeLimit    time.Duration `yaml:"time_limit"    env:"PANDAPOP_TIME_LIMIT"`
	MatchDisplay time.Duration `yaml:"match_display" env:"PANDAPOP_MATCH_DISPLAY"`
	Clear        time.Duration `yaml:"clear"`
	Drop         time.Duration `yaml:"drop"`
	Settle       time.Duration `yaml:"settle"`
	SwapRevert   time.Duration `yaml:"swap_revert"   env:"PANDAPOP_SWAP_REVERT"`
	DropSpeed    float64       `yaml:"drop_speed"`
}

// ScoringConfig sets the points awarded per cleared token.
type ScoringConfig struct {
	PerMatch int `yaml:"per_match" env:"PANDAPOP_SCORE_PER_MATCH"`
}

// DifficultyConfig selects a preset applied on top of the board and timing.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset" env:"PANDAPOP_DIFFICULTY"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPandasPreset adjusts kinds and time limit for a difficulty preset.
// Fewer kinds make matches easier to find.
func ApplyPandasPreset(cfg *PandasConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	switch preset {
	case DifficultyEasy:
		cfg.Board.Kinds = max(cfg.Board.Kinds-1, 3)
		cfg.Timing.TimeLimit = cfg.Timing.TimeLimit * 3 / 2
	case DifficultyHard:
		cfg.Board.Kinds = min(cfg.Board.Kinds+1, len(core.TokenPalette))
		cfg.Timing.TimeLimit = cfg.Timing.TimeLimit * 3 / 4
	}
}

// Engine converts the configuration into match3 settings.
func (c PandasConfig) Engine() match3.Config {
	return match3.Config{
		Width:             c.Board.Width,
		Height:            c.Board.Height,
		Kinds:             c.Board.Kinds,
		TimeLimit:         c.Timing.TimeLimit,
		ScorePerMatch:     c.Scoring.PerMatch,
		DropSpeed:         c.Timing.DropSpeed,
		MatchDisplayDelay: c.Timing.MatchDisplay,
		ClearDelay:        c.Timing.Clear,
		DropDelay:         c.Timing.Drop,
		SettleDelay:       c.Timing.Settle,
		SwapRevertDelay:   c.Timing.SwapRevert,
	}
}

// Validate reports settings the engine cannot run with.
// The error wraps match3.ErrInvalidConfig.
func (c PandasConfig) Validate() error {
	if err := c.Engine().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		return fmt.Errorf("config: %w: %v", match3.ErrInvalidConfig, err)
	}
	return nil
}

// maxBoardWidth is the widest board that fits an 80-column terminal.
const maxBoardWidth = 18

// Warnings lists settings that are legal but probably unintended.
func (c PandasConfig) Warnings() []string {
	var w []string
	if c.Board.Kinds == 2 {
		w = append(w, fmt.Sprintf("%d kinds: the opening board may already contain matches", c.Board.Kinds))
	}
	if c.Board.Kinds > len(core.TokenPalette) {
		w = append(w, fmt.Sprintf("%d kinds: only %d colors, some kinds will look alike", c.Board.Kinds, len(core.TokenPalette)))
	}
	if c.Board.Width > maxBoardWidth {
		w = append(w, fmt.Sprintf("board width %d may not fit an 80-column terminal", c.Board.Width))
	}
	if c.Scoring.PerMatch == 0 {
		w = append(w, "per_match is 0: every game scores nothing")
	}
	return w
}
