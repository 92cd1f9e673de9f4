package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/panda-pop/internal/core"
	"github.com/vovakirdan/panda-pop/internal/platform/tui"
	"github.com/vovakirdan/panda-pop/internal/registry"
	"github.com/vovakirdan/panda-pop/internal/storage"
)

const defaultGame = "pandas"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode, or classic Panda Pop if none is given.

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Enter/Space      - Select; select a neighbour to swap
  Mouse click      - Select the panda under the pointer
  X/Backspace      - Drop the selection
  P                - Pause
  R                - Restart (paused or after game over)
  B/Esc            - Leave (paused or after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - One colour fewer, 50% more time
  normal - The configured board
  hard   - One colour more, 25% less time

Examples:
  pandapop play
  pandapop play pandas_blitz
  pandapop play --difficulty hard
  pandapop play --config ./my-pandas.yaml --log ./pandapop.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// terminalConfig sizes the runtime config from the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg
}

// openStore opens the scores database. A failure is reported but not fatal:
// the game still runs without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'pandapop list' to see available modes", gameID)
	}

	// The TUI owns the terminal, so logs only go somewhere when --log is set.
	logger, closeLog, err := newLogger("pandapop", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := loadGameConfig(logger); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close() //nolint:errcheck // read-only after the game
	}

	opts := tui.Options{Store: store, Logger: logger, Player: currentPlayer()}
	if err := tui.Run(game, terminalConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// currentPlayer names the local player after the OS user.
func currentPlayer() string {
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "player"
}
