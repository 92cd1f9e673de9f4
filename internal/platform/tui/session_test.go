package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/panda-pop/internal/core"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(core.DefaultConfig(), Options{Player: "alice"})

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("selecting a mode should start a game")
	}
	if !m.gameModel.embedded {
		t.Error("session games should be embedded")
	}

	m, _ = sessionUpdate(t, m, TickMsg{})
	if !m.gameModel.State().GameOver {
		t.Fatal("fake game should be over after one tick")
	}

	m, _ = sessionUpdate(t, m, runeKey("b"))
	if m.gameModel != nil {
		t.Error("back after game over should return to the menu")
	}
	if m.quitting {
		t.Error("going back must not end the session")
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	m := NewSessionModel(core.DefaultConfig(), Options{Store: openTestStore(t)})

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}

	m, _ = sessionUpdate(t, m, runeKey("b"))
	if m.scoreboard != nil {
		t.Error("back should close the scoreboard")
	}
	if m.gameModel != nil || m.quitting {
		t.Error("session should be back at the menu")
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(core.DefaultConfig(), Options{})

	m, cmd := sessionUpdate(t, m, runeKey("q"))
	if !m.quitting {
		t.Error("q should end the session")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command should quit the program")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := NewSessionModel(core.DefaultConfig(), Options{})

	m, _ = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config size = %dx%d, expected 120x40", m.config.ScreenW, m.config.ScreenH)
	}
}

func TestFilterQuit(t *testing.T) {
	if filterQuit(nil) != nil {
		t.Error("nil command should stay nil")
	}
	if msg := filterQuit(tea.Quit)(); msg != nil {
		t.Errorf("quit should be dropped, got %T", msg)
	}

	type ping struct{}
	pass := func() tea.Msg { return ping{} }
	if _, ok := filterQuit(pass)().(ping); !ok {
		t.Error("other messages should pass through")
	}
}
