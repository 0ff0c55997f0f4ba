package pong

import (
	"strings"
	"testing"

	"github.com/vovakirdan/starfield-pong/internal/config"
	"github.com/vovakirdan/starfield-pong/internal/core"
)

type recordingSpeaker struct {
	played []core.Cue
	muted  bool
}

func (s *recordingSpeaker) Play(cue core.Cue) {
	if !s.muted {
		s.played = append(s.played, cue)
	}
}

func (s *recordingSpeaker) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

func (s *recordingSpeaker) Muted() bool {
	return s.muted
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 100,
		Seed:     seed,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	run := func() State {
		g := New(config.DefaultPongConfig(), nil)
		g.Reset(testRuntime(12345))
		g.Step(frame(core.ActionStart))
		for i := 0; i < 3000; i++ {
			switch {
			case i%7 == 0:
				g.Step(frame(core.ActionAUp, core.ActionBDown))
			case i%5 == 0:
				g.Step(frame(core.ActionADown, core.ActionBUp))
			default:
				g.Step(frame())
			}
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("Determinism failed:\n run1 %+v\n run2 %+v", a, b)
	}
}

func TestGameStartsIdle(t *testing.T) {
	g := New(config.DefaultPongConfig(), nil)
	g.Reset(testRuntime(1))

	res := g.Step(frame())
	if res.State.Active {
		t.Error("Game should wait in the menu until started")
	}

	res = g.Step(frame(core.ActionStart))
	if !res.State.Active {
		t.Error("Start should begin a round")
	}
	if res.State.ScoreA != 0 || res.State.ScoreB != 0 {
		t.Error("A new round starts at 0-0")
	}
}

func TestGameMuteToggle(t *testing.T) {
	sp := &recordingSpeaker{}
	g := New(config.DefaultPongConfig(), sp)
	g.Reset(testRuntime(1))

	if res := g.Step(frame(core.ActionMute)); !res.State.Muted {
		t.Error("Mute action should mute the speaker")
	}
	if res := g.Step(frame(core.ActionMute)); res.State.Muted {
		t.Error("Second mute action should unmute")
	}
}

func TestGamePlaysCues(t *testing.T) {
	sp := &recordingSpeaker{}
	g := New(config.DefaultPongConfig(), sp)
	g.Reset(testRuntime(1))
	g.Step(frame(core.ActionStart))

	g.state.Ball = Ball{X: 570, DX: 7}
	g.Step(frame())

	if len(sp.played) != 1 || sp.played[0] != core.CuePaddle {
		t.Errorf("Expected a single paddle cue, got %v", sp.played)
	}

	sp.muted = true
	g.state.Ball = Ball{X: 570, DX: 7}
	g.Step(frame())
	if len(sp.played) != 1 {
		t.Error("Muted speaker should stay silent")
	}
}

func TestGameRoundResult(t *testing.T) {
	g := New(config.DefaultPongConfig(), nil)
	g.Reset(testRuntime(1))
	g.Step(frame(core.ActionStart))

	if _, ok := g.LastResult(); ok {
		t.Fatal("No result before a round is won")
	}

	g.state.ScoreA, g.state.ScoreB = 10, 4
	g.state.LongestRally = 6
	g.state.Ball = Ball{X: 638, DX: 7}
	res := g.Step(frame())

	if !res.RoundOver {
		t.Fatal("Step should report the won round")
	}
	if res.State.Active {
		t.Error("Round should be over")
	}

	result, ok := g.LastResult()
	if !ok {
		t.Fatal("Result should be available after a win")
	}
	if result.Winner != SideA || result.ScoreA != 11 || result.ScoreB != 4 {
		t.Errorf("Unexpected result %+v", result)
	}
	if result.LongestRally != 6 {
		t.Errorf("LongestRally = %d, expected 6", result.LongestRally)
	}
	if result.Duration <= 0 {
		t.Error("Duration should be positive")
	}

	// Restart clears the result
	g.Step(frame(core.ActionStart))
	if _, ok := g.LastResult(); ok {
		t.Error("Starting a new round should clear the last result")
	}
}

func TestGameRender(t *testing.T) {
	sp := &recordingSpeaker{}
	g := New(config.DefaultPongConfig(), sp)
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "PRESS SPACE TO START") {
		t.Error("Menu should ask to press space")
	}

	g.Step(frame(core.ActionStart))
	g.Render(screen)
	out := screen.String()
	if strings.Contains(out, "PRESS SPACE") {
		t.Error("Menu text should disappear once the round starts")
	}
	if !strings.ContainsRune(out, BallChar) {
		t.Error("Ball should be drawn during a round")
	}

	v := newViewport(g.state.Field, 80, 24)
	if screen.Get(v.col(g.state.PaddleA.X), v.row(0)) != PaddleChar {
		t.Error("Paddle A should be drawn at its position")
	}
	if screen.Get(v.col(g.state.PaddleB.X), v.row(0)) != PaddleChar {
		t.Error("Paddle B should be drawn at its position")
	}

	g.state.Active = false
	g.state.Winner = SideB
	sp.muted = true
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "PLAYER B WINS!") || !strings.Contains(out, "SPACE TO RESTART") {
		t.Error("Win message should be shown")
	}
	if !strings.Contains(out, "MUTED") {
		t.Error("Mute indicator should be shown")
	}
}

func TestRenderGhostBallIsDim(t *testing.T) {
	g := New(config.DefaultPongConfig(), nil)
	g.Reset(testRuntime(1))
	g.Step(frame(core.ActionStart))
	g.state.Ball = Ball{X: 200, Y: 100, Tint: TintGhost}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	v := newViewport(g.state.Field, 80, 24)
	cell := screen.GetCell(v.col(200), v.row(100))
	if cell.Rune != BallChar || cell.Color != core.ColorDim {
		t.Errorf("Ghost ball should be drawn dim, got %+v", cell)
	}
}

func TestViewportBounds(t *testing.T) {
	v := newViewport(testField, 80, 24)

	if v.col(-testField.HalfW) != 0 || v.col(testField.HalfW) != 79 {
		t.Errorf("Field edges should map to the first and last column, got %d/%d",
			v.col(-testField.HalfW), v.col(testField.HalfW))
	}
	if v.row(testField.HalfH) != 0 || v.row(-testField.HalfH) != 23 {
		t.Errorf("Field edges should map to the first and last row, got %d/%d",
			v.row(testField.HalfH), v.row(-testField.HalfH))
	}
	if v.row(100) >= v.row(-100) {
		t.Error("Higher world y should map to an earlier row")
	}
}
