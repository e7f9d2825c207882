package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/scene"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := config.DefaultDodgeConfig()
	cfg.World.GravityY = 0

	m, err := NewModel(Options{
		Config:   cfg,
		TickRate: 60,
		Seed:     7,
		Player:   "tester",
		Store:    store,
		Width:    80,
		Height:   25,
	})
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	return m
}

func gameplay(t *testing.T, m Model) *dodge.Gameplay {
	t.Helper()
	g, ok := m.Director().Active().(*dodge.Gameplay)
	if !ok {
		t.Fatalf("active scene = %s, want gameplay", m.Director().Active().ID())
	}
	return g
}

func TestModelViewShowsTitle(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()

	for _, want := range []string{"My Simple Game", "Start Game", "tester", "best 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModelClickStartsGame(t *testing.T) {
	m := newTestModel(t, nil)
	m.View()

	// "Start Game" occupies cells 35..44 of row 12 on an 80x24 playfield.
	m = update(t, m, tea.MouseMsg{X: 44, Y: 12, Action: tea.MouseActionMotion})
	m = tick(t, m, 1)
	m = update(t, m, tea.MouseMsg{X: 44, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m, 1)

	if got := m.State().Scene; got != string(scene.Gameplay) {
		t.Fatalf("scene after click = %q, want gameplay", got)
	}
	if m.State().Session != 1 {
		t.Errorf("session = %d, want 1", m.State().Session)
	}
}

func TestModelClickOutsideButtonDoesNothing(t *testing.T) {
	m := newTestModel(t, nil)
	m.View()

	m = update(t, m, tea.MouseMsg{X: 2, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m, 1)

	if got := m.State().Scene; got != string(scene.Title) {
		t.Errorf("scene = %q, want title", got)
	}
}

func TestModelConfirmKeyStartsGame(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)

	if got := m.State().Scene; got != string(scene.Gameplay) {
		t.Errorf("scene = %q, want gameplay", got)
	}
}

func TestModelHeldKeysSteer(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m, 1)
	if vx := gameplay(t, m).Player().Vel.X; vx != -160 {
		t.Errorf("vx after left = %v, want -160", vx)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, 1)
	if vx := gameplay(t, m).Player().Vel.X; vx != 160 {
		t.Errorf("vx after right = %v, want 160", vx)
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)
	m = tick(t, m, 120)

	g := gameplay(t, m)
	if g.Score() != 20 {
		t.Fatalf("score before collision = %d, want 20", g.Score())
	}
	g.Obstacles().Bodies()[0].Pos = g.Player().Pos
	m = tick(t, m, 30)

	if !m.State().GameOver || !m.State().PhysicsPaused {
		t.Fatalf("state = %+v, want game over with physics paused", m.State())
	}

	scores, err := store.TopScores(storage.GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 20 || scores[0].Player != "tester" {
		t.Errorf("saved %+v", scores[0])
	}
	if !strings.Contains(m.View(), "best 20") {
		t.Error("status line does not show the new best")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})
	m.View()

	if w, h := m.frame.screen.Width(), m.frame.screen.Height(); w != 120 || h != 40 {
		t.Errorf("playfield = %dx%d, want 120x40", w, h)
	}
}
