package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/panda-pop/internal/platform/tui"
	"github.com/vovakirdan/panda-pop/internal/registry"
)

// runMenu is the root command: pick a mode, play, and come back to the menu.
func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("pandapop", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := loadGameConfig(logger); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close() //nolint:errcheck // best-effort
	}

	cfg := terminalConfig()
	opts := tui.Options{Store: store, Logger: logger, Player: currentPlayer()}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}

		// Each game gets a fresh board unless --seed pins it.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, cfg, opts); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
