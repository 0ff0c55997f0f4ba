package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfield-pong/internal/config"
	"github.com/vovakirdan/starfield-pong/internal/core"
	"github.com/vovakirdan/starfield-pong/internal/games/pong"
	"github.com/vovakirdan/starfield-pong/internal/storage"
)

// Options carries the collaborators of a game session.
type Options struct {
	Store      *storage.Store // Match history; nil disables saving
	Logger     *log.Logger    // nil discards log output
	Source     string         // Recorded with each match: "local" or the SSH user
	HoldWindow time.Duration  // Held-key emulation window
}

// Model is the Bubble Tea model for a Pong session.
type Model struct {
	game    *pong.Game
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	source  string
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	tracker *InputTracker

	gameState    core.GameState
	roundStarted time.Time
	quitting     bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *pong.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	source := opts.Source
	if source == "" {
		source = "local"
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:   opts.Store,
		logger:  logger,
		source:  source,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		tracker: NewInputTracker(opts.HoldWindow),
	}
}

// playfieldHeight leaves one row for the help line.
func playfieldHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.tracker.Press(action, now)

	return m, nil
}

// handleResize processes window resize events. World coordinates do not
// depend on the terminal size, so the round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	wasActive := m.gameState.Active

	result := m.game.Step(m.tracker.Frame(now))
	m.gameState = result.State

	if m.gameState.Active && !wasActive {
		m.roundStarted = now
		m.logger.Info("round started", "source", m.source)
	}

	if result.RoundOver {
		if res, ok := m.game.LastResult(); ok {
			m.recordResult(res, now)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// recordResult logs a finished round and saves it to the match history.
func (m Model) recordResult(res pong.RoundResult, ended time.Time) {
	m.logger.Info("round won",
		"winner", res.Winner.String(),
		"score", fmt.Sprintf("%d-%d", res.ScoreA, res.ScoreB),
		"longest_rally", res.LongestRally,
		"duration", res.Duration,
	)

	if m.store == nil {
		return
	}

	started := m.roundStarted
	if started.IsZero() {
		started = ended.Add(-res.Duration)
	}

	saved, err := m.store.SaveMatch(storage.Match{
		GameID:       m.game.ID(),
		Source:       m.source,
		ScoreA:       res.ScoreA,
		ScoreB:       res.ScoreB,
		Winner:       res.Winner.String(),
		Duration:     res.Duration,
		LongestRally: res.LongestRally,
		StartedAt:    started,
		EndedAt:      ended,
	})
	if err != nil {
		m.logger.Warn("could not save match", "error", err)
		return
	}
	m.logger.Debug("match saved", "match_id", saved.MatchID)
}

// saveScreenshot saves the current playfield to a text file.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot resolve home directory: %w", err)
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game *pong.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
