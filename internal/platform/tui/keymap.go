package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfield-pong/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press or repeat.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	AUp        key.Binding
	ADown      key.Binding
	BUp        key.Binding
	BDown      key.Binding
	Start      key.Binding
	Mute       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AUp, k.ADown, k.BUp, k.BDown, k.Start, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AUp, k.ADown, k.BUp, k.BDown},
		{k.Start, k.Mute, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AUp: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "left up"),
		),
		ADown: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "left down"),
		),
		BUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "right up"),
		),
		BDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "right down"),
		),
		Start: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m", "M"),
			key.WithHelp("m", "mute"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.AUp):
		return core.ActionAUp, false
	case key.Matches(msg, k.ADown):
		return core.ActionADown, false
	case key.Matches(msg, k.BUp):
		return core.ActionBUp, false
	case key.Matches(msg, k.BDown):
		return core.ActionBDown, false
	case key.Matches(msg, k.Start):
		return core.ActionStart, false
	case key.Matches(msg, k.Mute):
		return core.ActionMute, false
	}
	return core.ActionNone, false
}

// opposite pairs the two directions of one paddle.
var opposite = map[core.Action]core.Action{
	core.ActionAUp:   core.ActionADown,
	core.ActionADown: core.ActionAUp,
	core.ActionBUp:   core.ActionBDown,
	core.ActionBDown: core.ActionBUp,
}

// InputTracker emulates held keys on terminals, which report presses and
// auto-repeats but never releases. A movement key stays held until the
// hold window passes without a repeat, or until the opposite direction of
// the same paddle is pressed. Other actions fire once on the next frame.
type InputTracker struct {
	window  time.Duration
	held    map[core.Action]time.Time
	pending core.InputFrame
}

// NewInputTracker creates a tracker with the given hold window.
// A non-positive window uses DefaultHoldWindow.
func NewInputTracker(window time.Duration) *InputTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &InputTracker{
		window:  window,
		held:    make(map[core.Action]time.Time),
		pending: core.NewInputFrame(),
	}
}

// Press records a key press or repeat at the given time.
func (t *InputTracker) Press(a core.Action, now time.Time) {
	if other, ok := opposite[a]; ok {
		delete(t.held, other)
		t.held[a] = now
		return
	}
	if a != core.ActionNone {
		t.pending.Set(a)
	}
}

// Frame returns the input for the tick at the given time: every movement
// key still inside its hold window plus the one-shot actions pressed since
// the previous frame.
func (t *InputTracker) Frame(now time.Time) core.InputFrame {
	frame := t.pending.Clone()
	t.pending.Clear()

	for a, last := range t.held {
		if now.Sub(last) > t.window {
			delete(t.held, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Release forgets all held keys and pending actions.
func (t *InputTracker) Release() {
	clear(t.held)
	t.pending.Clear()
}
