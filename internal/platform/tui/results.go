package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/panda-pop/internal/core"
	"github.com/vovakirdan/panda-pop/internal/registry"
	"github.com/vovakirdan/panda-pop/internal/storage"
)

// recordRun logs a finished game and stores it. Games that report run
// counters get them saved alongside the score. Zero scores are not stored.
func recordRun(store *storage.Store, logger *log.Logger, game registry.Game, player string, state core.GameState) {
	run := storage.Run{
		GameID:    game.ID(),
		Player:    player,
		Score:     state.Score,
		CreatedAt: time.Now(),
	}
	if sr, ok := game.(registry.StatsReporter); ok {
		st := sr.RunStats()
		run.Seed = st.Seed
		run.Duration = st.Duration
		run.Swaps = st.Swaps
		run.InvalidSwaps = st.InvalidSwaps
		run.Matches = st.Matches
		run.Cascades = st.Cascades
		run.MaxCascade = st.MaxCascade
		run.TilesCleared = st.TilesCleared
	}

	logger.Info("game over",
		"game", run.GameID,
		"player", run.Player,
		"score", run.Score,
		"tiles", run.TilesCleared,
		"max_cascade", run.MaxCascade,
	)

	if store == nil || run.Score <= 0 {
		return
	}
	id, err := store.SaveRun(run)
	if err != nil {
		logger.Error("could not save run", "game", run.GameID, "error", err)
		return
	}
	logger.Debug("run saved", "id", id)
}
