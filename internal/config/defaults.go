package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pandas.yaml
var defaultPandasYAML []byte

// DefaultPandasConfig returns the built-in configuration.
// It matches defaults/pandas.yaml and is used if the embedded file is unreadable.
func DefaultPandasConfig() PandasConfig {
	return PandasConfig{
		Board: BoardConfig{
			Width:  7,
			Height: 7,
			Kinds:  6,
		},
		Timing: TimingConfig{
			TimeLimit:    60 * time.Second,
			MatchDisplay: 800 * time.Millisecond,
			Clear:        300 * time.Millisecond,
			Drop:         200 * time.Millisecond,
			Settle:       500 * time.Millisecond,
			SwapRevert:   500 * time.Millisecond,
			DropSpeed:    5,
		},
		Scoring: ScoringConfig{
			PerMatch: 100,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPandasYAML
}
