package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the built-in configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			HalfWidth:  640,
			HalfHeight: 360,
		},
		Paddles: PaddleConfig{
			Speed:            15,
			Inset:            50,
			HalfHeight:       50,
			HitRadius:        60,
			BoostedHitRadius: 110,
			BandDepth:        20,
			BoostHits:        2,
		},
		Ball: BallConfig{
			ServeSpeed:     7.0,
			ServeSpread:    5.0,
			WallMargin:     15,
			RallyAccel:     1.05,
			PowerHitFactor: 1.2,
			SpinDivisor:    50,
			MinVertical:    1.5,
		},
		PowerUps: PowerUpConfig{
			SpawnOdds:       500,
			PickupDistance:  60,
			AmplitudeMargin: 100,
			AngularRate:     2.0,
			GhostDuration:   3 * time.Second,
		},
		Gameplay: GameplayConfig{
			WinScore:   11,
			HoldWindow: 150 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Starfield: StarfieldConfig{
			Count:      100,
			MinSize:    0.05,
			MaxSize:    0.2,
			SpeedScale: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
