// Package registry lets game modes register themselves from init() so the
// front end can list and create them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/panda-pop/internal/core"
)

// Game is a playable mode. Implementations hold pure game logic; the
// platform owns input mapping, timing and terminal output.
type Game interface {
	// ID is the stable identifier used on the command line and in storage.
	ID() string

	// Title is the human-readable name.
	Title() string

	// Reset starts a new game. It is called once at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into dst. The screen is cleared first.
	Render(dst *core.Screen)

	// State returns the current score, clock and flags.
	State() core.GameState
}

// Describer is implemented by games that provide a one-line description.
type Describer interface {
	Description() string
}

// Resizer is implemented by games that can follow a terminal resize without
// restarting. Games without it are reset on resize.
type Resizer interface {
	Resize(width, height int)
}

// RunStats summarises a finished game for persistence.
type RunStats struct {
	Seed         int64
	Duration     time.Duration
	Swaps        int
	InvalidSwaps int
	Matches      int
	Cascades     int
	MaxCascade   int
	TilesCleared int
}

// StatsReporter is implemented by games that keep per-run counters.
type StatsReporter interface {
	RunStats() RunStats
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	factories[id] = f
	infos[id] = info
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
