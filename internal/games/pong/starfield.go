package pong

import (
	"github.com/vovakirdan/starfield-pong/internal/config"
)

// Star is one background star drifting to the left.
type Star struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Starfield is the scrolling background. It is purely cosmetic and draws
// from its own random source so it never disturbs the simulation.
type Starfield struct {
	field Field
	rng   Rand
	stars []Star
}

// NewStarfield scatters cfg.Count stars over the field.
func NewStarfield(cfg config.StarfieldConfig, f Field, rng Rand) *Starfield {
	sf := &Starfield{
		field: f,
		rng:   rng,
		stars: make([]Star, cfg.Count),
	}
	for i := range sf.stars {
		size := cfg.MinSize + rng.Float64()*(cfg.MaxSize-cfg.MinSize)
		sf.stars[i] = Star{
			X:     sf.randomIn(f.HalfW),
			Y:     sf.randomIn(f.HalfH),
			Size:  size,
			Speed: size * cfg.SpeedScale,
		}
	}
	return sf
}

// Advance moves every star one tick to the left, wrapping stars that leave
// the field back to the right edge at a fresh height.
func (sf *Starfield) Advance() {
	for i := range sf.stars {
		st := &sf.stars[i]
		st.X -= st.Speed
		if st.X < -sf.field.HalfW {
			st.X = sf.field.HalfW
			st.Y = sf.randomIn(sf.field.HalfH)
		}
	}
}

// Stars returns the current stars. The slice must not be modified.
func (sf *Starfield) Stars() []Star {
	return sf.stars
}

func (sf *Starfield) randomIn(half float64) float64 {
	return (sf.rng.Float64()*2 - 1) * half
}
