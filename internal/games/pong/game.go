// Package pong implements Starfield Pong: two players on one keyboard,
// power-ups, a ghost ball and a scrolling starfield.
//
// The simulation itself (Rules.Step) is a pure function of state, input
// and a random source. Game wraps it for the platform layer: it owns the
// clock, the random sources, the starfield and the speaker.
package pong

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/starfield-pong/internal/config"
	"github.com/vovakirdan/starfield-pong/internal/core"
)

// Speaker plays sound cues. Playback is fire-and-forget; implementations
// swallow their own failures.
type Speaker interface {
	Play(cue core.Cue)
	ToggleMute() bool
	Muted() bool
}

// Game implements the Pong game for the platform layer.
type Game struct {
	cfg     config.PongConfig
	rules   Rules
	speaker Speaker

	runtime core.RuntimeConfig
	state   State
	rng     *rand.Rand
	stars   *Starfield

	now        time.Duration // Game clock, advanced by one tick period per Step
	period     time.Duration
	roundStart time.Duration
	lastResult *RoundResult
}

// silence is used when no speaker is given.
type silence struct{ muted bool }

func (s *silence) Play(core.Cue)    {}
func (s *silence) ToggleMute() bool { s.muted = !s.muted; return s.muted }
func (s *silence) Muted() bool      { return s.muted }

// New creates a new game with the given configuration and speaker.
// A nil speaker plays nothing.
func New(cfg config.PongConfig, speaker Speaker) *Game {
	if speaker == nil {
		speaker = &silence{}
	}
	return &Game{
		cfg:     cfg,
		rules:   RulesFromConfig(cfg),
		speaker: speaker,
	}
}

// ID returns the identifier used for match history.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Starfield Pong"
}

// Reset initializes the game in its idle (menu) state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	field := FieldFromConfig(g.cfg)
	g.state = g.rules.NewState(field)
	g.stars = NewStarfield(g.cfg.Starfield, field, rand.New(rand.NewSource(runtime.Seed+1)))

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.period = time.Second / time.Duration(tickRate)
	g.now = 0
	g.roundStart = 0
	g.lastResult = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.now += g.period
	g.stars.Advance()

	if in.Has(core.ActionMute) {
		g.speaker.ToggleMute()
	}

	if in.Has(core.ActionStart) {
		if s, fx, ok := g.rules.StartOrReset(g.state, g.rng); ok {
			g.state = s
			g.roundStart = g.now
			g.lastResult = nil
			g.dispatch(fx)
		}
	}

	s, fx := g.rules.Step(g.state, Input{Keys: KeysFromFrame(in), Now: g.now}, g.rng)
	g.state = s
	roundOver := g.dispatch(fx)

	return core.StepResult{State: g.State(), RoundOver: roundOver}
}

// dispatch carries out step effects and reports whether the round was won.
func (g *Game) dispatch(fx []Effect) bool {
	won := false
	for _, e := range fx {
		switch e.Kind {
		case EffectSound:
			g.speaker.Play(e.Cue)
		case EffectWin:
			res := resultOf(g.state, g.now-g.roundStart)
			g.lastResult = &res
			won = true
		}
	}
	return won
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	return core.GameState{
		ScoreA: g.state.ScoreA,
		ScoreB: g.state.ScoreB,
		Active: g.state.Active,
		Muted:  g.speaker.Muted(),
	}
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() State {
	return g.state
}

// LastResult returns the summary of the most recently won round.
func (g *Game) LastResult() (RoundResult, bool) {
	if g.lastResult == nil {
		return RoundResult{}, false
	}
	return *g.lastResult, true
}
