package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfield-pong/internal/config"
	"github.com/vovakirdan/starfield-pong/internal/core"
	"github.com/vovakirdan/starfield-pong/internal/games/pong"
	"github.com/vovakirdan/starfield-pong/internal/storage"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()

	game := pong.New(config.DefaultPongConfig(), nil)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 100, Seed: 42}
	m := NewModel(game, cfg, opts)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModelStartsRoundOnSpace(t *testing.T) {
	m := newTestModel(t, Options{})
	now := time.Now()

	m, _ = update(t, m, TickMsg(now))
	if m.gameState.Active {
		t.Fatal("game should start idle")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := update(t, m, TickMsg(now.Add(10*time.Millisecond)))

	if !m.gameState.Active {
		t.Error("space should start a round")
	}
	if m.roundStarted.IsZero() {
		t.Error("round start time should be recorded")
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelMovesPaddleWhileHeld(t *testing.T) {
	m := newTestModel(t, Options{})
	now := time.Now()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg(now))
	before := m.game.Snapshot().PaddleA.Y

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))

	if after := m.game.Snapshot().PaddleA.Y; after <= before {
		t.Errorf("held w should move the left paddle up: %.1f -> %.1f", before, after)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("expected a 120x39 playfield, got %dx%d", m.screen.Width(), m.screen.Height())
	}
	if !m.game.State().Active {
		t.Error("resizing should not end the round")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, Options{})

	view := m.View()
	if !strings.Contains(view, "PRESS SPACE TO START") {
		t.Error("idle view should show the start prompt")
	}
	if !strings.Contains(view, "left up") {
		t.Error("view should include the key help line")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("expected 24 lines, got %d", lines)
	}
}

func TestModelRecordsResult(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, Options{Store: store, Source: "alice"})
	ended := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

	m.recordResult(pong.RoundResult{
		ScoreA:       11,
		ScoreB:       4,
		Winner:       pong.SideA,
		Duration:     time.Minute,
		LongestRally: 6,
	}, ended)

	matches, err := store.RecentMatches("pong", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 saved match, got %d", len(matches))
	}

	got := matches[0]
	if got.Winner != "A" || got.ScoreA != 11 || got.ScoreB != 4 {
		t.Errorf("unexpected match: %+v", got)
	}
	if got.Source != "alice" {
		t.Errorf("expected source alice, got %q", got.Source)
	}
	if !got.StartedAt.Equal(ended.Add(-time.Minute)) {
		t.Errorf("start should fall back to end minus duration, got %v", got.StartedAt)
	}
}

func TestModelRecordResultWithoutStore(t *testing.T) {
	m := newTestModel(t, Options{})

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("recordResult panicked without a store: %v", r)
		}
	}()
	m.recordResult(pong.RoundResult{ScoreA: 3, ScoreB: 11, Winner: pong.SideB}, time.Now())
}
