package pong

import (
	"time"

	"github.com/vovakirdan/starfield-pong/internal/core"
)

// Side identifies a player.
type Side int

const (
	SideNone Side = iota
	SideA         // Left paddle, W/S keys
	SideB         // Right paddle, Up/Down keys
)

// String returns the player label shown on screen.
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "-"
	}
}

// Tint is the ball's display color. It never affects physics.
type Tint int

const (
	TintNormal Tint = iota
	TintGhost       // Near-invisible while ghost mode lasts
	TintPower       // Last hit was a power hit
)

// PowerUpKind is the effect a power-up applies when collected.
type PowerUpKind int

const (
	PowerUpSize  PowerUpKind = iota // Doubles the last hitter's paddle for a few hits
	PowerUpGhost                    // Makes the ball near-invisible for a while
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSize:
		return "size"
	case PowerUpGhost:
		return "ghost"
	default:
		return "unknown"
	}
}

// Field is the playfield in world units, centred on the origin with y growing upward.
type Field struct {
	HalfW float64
	HalfH float64
}

// Ball is the single ball in play.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Tint   Tint
}

// Paddle is one player's paddle. X never changes after setup.
type Paddle struct {
	Side      Side
	X, Y      float64
	Scale     float64 // 1 at baseline, 2 while boosted
	BoostHits int     // Hits left on a size boost
}

// Boosted reports whether the paddle holds a size boost.
func (p Paddle) Boosted() bool {
	return p.BoostHits > 0
}

// PowerUp is the only power-up instance; Active tells whether it is on the field.
type PowerUp struct {
	Kind   PowerUpKind
	Active bool
	X, Y   float64
}

// Ghost tracks ghost mode.
type Ghost struct {
	Active bool
	Until  time.Duration // Game clock at which ghost mode ends
}

// State is the complete simulation state. It holds no references, so
// assigning a State copies it.
type State struct {
	Field   Field
	Ball    Ball
	PaddleA Paddle
	PaddleB Paddle
	ScoreA  int
	ScoreB  int
	PowerUp PowerUp
	Ghost   Ghost

	LastHitter Side
	Active     bool // False while in the menu or after a round is won
	Winner     Side // Set when a round is won, cleared on reset

	Rally        int // Paddle hits since the last serve
	LongestRally int // Longest rally of the current round
	Tick         uint64
}

// Paddle returns the paddle for the given side.
func (s *State) Paddle(side Side) *Paddle {
	if side == SideA {
		return &s.PaddleA
	}
	return &s.PaddleB
}

// Keys is the held-key snapshot read once per tick.
type Keys struct {
	AUp, ADown bool
	BUp, BDown bool
}

// KeysFromFrame converts a platform input frame to a key snapshot.
func KeysFromFrame(in core.InputFrame) Keys {
	return Keys{
		AUp:   in.Has(core.ActionAUp),
		ADown: in.Has(core.ActionADown),
		BUp:   in.Has(core.ActionBUp),
		BDown: in.Has(core.ActionBDown),
	}
}

// moving reports whether the given side holds either movement key.
func (k Keys) moving(side Side) bool {
	if side == SideA {
		return k.AUp || k.ADown
	}
	return k.BUp || k.BDown
}

// Input is everything the step reads besides the state.
type Input struct {
	Keys Keys
	Now  time.Duration // Game clock
}

// EffectKind classifies a side-effect request emitted by a step.
type EffectKind int

const (
	EffectSound            EffectKind = iota // Play Cue
	EffectScore                              // Scores changed, redraw them
	EffectWin                                // Side won the round
	EffectPowerUpSpawned                     // PowerUp appeared
	EffectPowerUpCollected                   // PowerUp was collected
)

// Effect is a request for the presentation layer.
type Effect struct {
	Kind    EffectKind
	Cue     core.Cue
	Side    Side
	PowerUp PowerUpKind
}

// Rand is the uniform random source the simulation draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}
