package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, the database and logs.
const AppDir = ".starfield-pong"

// LoadPong loads the game configuration.
// Search order: customPath -> ~/.starfield-pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadPong(customPath string) (PongConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PongConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pong.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PongConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PongConfig{}, err
	}
	return cfg, nil
}

// Validate reports settings the simulation cannot run with.
func (c PongConfig) Validate() error {
	var errs []error
	if c.Field.HalfWidth <= 0 || c.Field.HalfHeight <= 0 {
		errs = append(errs, errors.New("field dimensions must be positive"))
	}
	if c.Paddles.Speed <= 0 {
		errs = append(errs, errors.New("paddles.speed must be positive"))
	}
	if c.Paddles.HalfHeight <= 0 || c.Paddles.HalfHeight >= c.Field.HalfHeight {
		errs = append(errs, errors.New("paddles.half_height must be positive and smaller than field.half_height"))
	}
	if c.Paddles.Inset <= c.Paddles.BandDepth || c.Paddles.Inset >= c.Field.HalfWidth {
		errs = append(errs, errors.New("paddles.inset must exceed band_depth and fit inside the field"))
	}
	if c.Paddles.BoostHits <= 0 {
		errs = append(errs, errors.New("paddles.boost_hits must be positive"))
	}
	if c.Ball.ServeSpeed <= 0 {
		errs = append(errs, errors.New("ball.serve_speed must be positive"))
	}
	if c.Ball.SpinDivisor <= 0 {
		errs = append(errs, errors.New("ball.spin_divisor must be positive"))
	}
	if c.PowerUps.SpawnOdds <= 0 {
		errs = append(errs, errors.New("powerups.spawn_odds must be positive"))
	}
	if c.Gameplay.WinScore <= 0 {
		errs = append(errs, errors.New("gameplay.win_score must be positive"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, errors.New("audio.volume must be within [0, 1]"))
	}
	if c.Starfield.Count < 0 || c.Starfield.MinSize > c.Starfield.MaxSize {
		errs = append(errs, errors.New("starfield count must not be negative and min_size must not exceed max_size"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}
