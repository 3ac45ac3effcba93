package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/epic-rps/internal/core"
	"github.com/vovakirdan/epic-rps/internal/games/roshambo"
	"github.com/vovakirdan/epic-rps/internal/multiplayer"
)

func menuPress(t *testing.T, m MenuModel, msgs ...tea.Msg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(MenuModel); !ok {
			t.Fatalf("Update returned %T, want MenuModel", next)
		}
	}
	return m
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	view := m.View()
	for _, want := range []string{"Classic (vs CPU)", "Versus (hot seat)"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q:\n%s", want, view)
		}
	}
}

func TestMenuSelectWraps(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	if len(m.items) < 2 {
		t.Fatalf("expected both modes registered, got %d", len(m.items))
	}

	// Up from the first item wraps to the last.
	m = menuPress(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.result()
	last := m.items[len(m.items)-1]
	if res.Quit || res.GameID != last.GameID {
		t.Errorf("result = %+v, expected %q", res, last.GameID)
	}
}

func TestMenuSelectClassic(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	res := menuPress(t, m, tea.KeyMsg{Type: tea.KeyEnter}).result()
	if res.GameID != roshambo.ClassicID || res.Mode != multiplayer.MatchModeVsCPU {
		t.Errorf("result = %+v, expected classic vs CPU", res)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m = menuPress(t, m, tea.WindowSizeMsg{Width: 100, Height: 40}, runeKey('q'))

	res := m.result()
	if !res.Quit || res.GameID != "" {
		t.Errorf("result = %+v, expected quit", res)
	}
	if res.Config.ScreenW != 100 || res.Config.ScreenH != 40 {
		t.Errorf("config size = %dx%d, expected resize to be kept", res.Config.ScreenW, res.Config.ScreenH)
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}
