package pong

import (
	"time"

	"github.com/vovakirdan/starfield-pong/internal/config"
)

// Rules holds the tunable constants of the simulation.
type Rules struct {
	PaddleSpeed      float64
	PaddleInset      float64
	PaddleHalfHeight float64
	HitRadius        float64
	BoostedHitRadius float64
	BandDepth        float64
	BoostHits        int

	ServeSpeed     float64
	ServeSpread    float64
	WallMargin     float64
	RallyAccel     float64
	PowerHitFactor float64
	SpinDivisor    float64
	MinVertical    float64

	SpawnOdds       int
	PickupDistance  float64
	AmplitudeMargin float64
	AngularRate     float64
	GhostDuration   time.Duration

	WinScore int
}

// DefaultRules returns the classic rules.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultPongConfig())
}

// RulesFromConfig extracts the simulation rules from a game config.
func RulesFromConfig(cfg config.PongConfig) Rules {
	return Rules{
		PaddleSpeed:      cfg.Paddles.Speed,
		PaddleInset:      cfg.Paddles.Inset,
		PaddleHalfHeight: cfg.Paddles.HalfHeight,
		HitRadius:        cfg.Paddles.HitRadius,
		BoostedHitRadius: cfg.Paddles.BoostedHitRadius,
		BandDepth:        cfg.Paddles.BandDepth,
		BoostHits:        cfg.Paddles.BoostHits,

		ServeSpeed:     cfg.Ball.ServeSpeed,
		ServeSpread:    cfg.Ball.ServeSpread,
		WallMargin:     cfg.Ball.WallMargin,
		RallyAccel:     cfg.Ball.RallyAccel,
		PowerHitFactor: cfg.Ball.PowerHitFactor,
		SpinDivisor:    cfg.Ball.SpinDivisor,
		MinVertical:    cfg.Ball.MinVertical,

		SpawnOdds:       cfg.PowerUps.SpawnOdds,
		PickupDistance:  cfg.PowerUps.PickupDistance,
		AmplitudeMargin: cfg.PowerUps.AmplitudeMargin,
		AngularRate:     cfg.PowerUps.AngularRate,
		GhostDuration:   cfg.PowerUps.GhostDuration,

		WinScore: cfg.Gameplay.WinScore,
	}
}

// FieldFromConfig returns the playfield described by a game config.
func FieldFromConfig(cfg config.PongConfig) Field {
	return Field{HalfW: cfg.Field.HalfWidth, HalfH: cfg.Field.HalfHeight}
}

// paddleLimit is the furthest a paddle centre may travel from the midline.
func (r Rules) paddleLimit(f Field) float64 {
	return f.HalfH - r.PaddleHalfHeight
}

// hitRadius returns the vertical reach of a paddle.
func (r Rules) hitRadius(p Paddle) float64 {
	if p.Boosted() {
		return r.BoostedHitRadius
	}
	return r.HitRadius
}
