// Package config provides YAML-based game configuration loading for
// Starfield Pong.
package config

import "time"

// PongConfig contains all configuration for the game.
type PongConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Paddles   PaddleConfig    `yaml:"paddles"`
	Ball      BallConfig      `yaml:"ball"`
	PowerUps  PowerUpConfig   `yaml:"powerups"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
	Audio     AudioConfig     `yaml:"audio"`
	Starfield StarfieldConfig `yaml:"starfield"`
}

// FieldConfig defines the playfield in world units.
// The origin is the centre of the field and y grows upward.
type FieldConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

// PaddleConfig defines paddle movement and hit detection.
type PaddleConfig struct {
	Speed            float64 `yaml:"speed"`              // Units per tick
	Inset            float64 `yaml:"inset"`              // Distance from the side wall
	HalfHeight       float64 `yaml:"half_height"`        // Baseline half height
	HitRadius        float64 `yaml:"hit_radius"`         // Max centre offset for a hit
	BoostedHitRadius float64 `yaml:"boosted_hit_radius"` // Hit radius while boosted
	BandDepth        float64 `yaml:"band_depth"`         // Depth of the hit band in front of the face
	BoostHits        int     `yaml:"boost_hits"`         // Hits a size boost lasts
}

// BallConfig defines serve and rebound behaviour.
type BallConfig struct {
	ServeSpeed     float64 `yaml:"serve_speed"`      // Horizontal speed on serve
	ServeSpread    float64 `yaml:"serve_spread"`     // Max vertical speed on serve
	WallMargin     float64 `yaml:"wall_margin"`      // Ball radius used for wall bounces
	RallyAccel     float64 `yaml:"rally_accel"`      // Speed factor applied on every hit
	PowerHitFactor float64 `yaml:"power_hit_factor"` // Extra factor when the hitter is moving
	SpinDivisor    float64 `yaml:"spin_divisor"`     // Contact offset divisor for the rebound angle
	MinVertical    float64 `yaml:"min_vertical"`     // Minimum |dy| after a hit
}

// PowerUpConfig defines power-up spawning and effects.
type PowerUpConfig struct {
	SpawnOdds       int           `yaml:"spawn_odds"`       // 1 in N chance per tick
	PickupDistance  float64       `yaml:"pickup_distance"`  // Ball distance that collects it
	AmplitudeMargin float64       `yaml:"amplitude_margin"` // Oscillation amplitude is half height minus this
	AngularRate     float64       `yaml:"angular_rate"`     // Radians per second
	GhostDuration   time.Duration `yaml:"ghost_duration"`
}

// GameplayConfig defines round rules and input handling.
type GameplayConfig struct {
	WinScore   int           `yaml:"win_score"`
	HoldWindow time.Duration `yaml:"hold_window"` // How long a key press counts as held
}

// AudioConfig defines the sound output.
type AudioConfig struct {
	Enabled  bool    `yaml:"enabled"`
	SoundDir string  `yaml:"sound_dir"` // Optional directory with bounce.wav, wall.wav, score.wav
	Volume   float64 `yaml:"volume"`    // 0.0 to 1.0
}

// StarfieldConfig defines the background.
type StarfieldConfig struct {
	Count      int     `yaml:"count"`
	MinSize    float64 `yaml:"min_size"`
	MaxSize    float64 `yaml:"max_size"`
	SpeedScale float64 `yaml:"speed_scale"` // Drift per tick is size times this
}
