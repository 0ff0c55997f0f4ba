package pong

import (
	"math"
	"time"

	"github.com/vovakirdan/starfield-pong/internal/core"
)

// Step advances the simulation by one fixed tick and returns the new state
// together with the effects the presentation layer should carry out.
// Nothing happens while no round is running.
func (r Rules) Step(s State, in Input, rng Rand) (State, []Effect) {
	if !s.Active {
		return s, nil
	}

	var fx []Effect
	s.Tick++

	r.movePaddles(&s, in.Keys)

	s.Ball.X += s.Ball.DX
	s.Ball.Y += s.Ball.DY

	fx = r.bounceWalls(&s, fx)
	fx = r.updatePowerUp(&s, in.Now, rng, fx)
	r.decayGhost(&s, in.Now)
	fx = r.checkScore(&s, rng, fx)

	// Right paddle is checked before the left one.
	fx = r.collide(&s, SideB, in.Keys, fx)
	fx = r.collide(&s, SideA, in.Keys, fx)

	fx = r.checkWin(&s, fx)
	return s, fx
}

// movePaddles moves each paddle whose keys are held. The bound is checked
// before moving and the move stops on the bound, never past it.
func (r Rules) movePaddles(s *State, keys Keys) {
	limit := r.paddleLimit(s.Field)
	move := func(p *Paddle, up, down bool) {
		if up && p.Y < limit {
			p.Y = math.Min(p.Y+r.PaddleSpeed, limit)
		}
		if down && p.Y > -limit {
			p.Y = math.Max(p.Y-r.PaddleSpeed, -limit)
		}
	}
	move(&s.PaddleA, keys.AUp, keys.ADown)
	move(&s.PaddleB, keys.BUp, keys.BDown)
}

func (r Rules) bounceWalls(s *State, fx []Effect) []Effect {
	edge := s.Field.HalfH - r.WallMargin
	if s.Ball.Y > edge || s.Ball.Y < -edge {
		s.Ball.DY = -s.Ball.DY
		fx = append(fx, Effect{Kind: EffectSound, Cue: core.CueWall})
	}
	return fx
}

// updatePowerUp spawns, moves and collects the power-up.
func (r Rules) updatePowerUp(s *State, now time.Duration, rng Rand, fx []Effect) []Effect {
	pu := &s.PowerUp
	if !pu.Active {
		if rng.Intn(r.SpawnOdds) == 0 {
			*pu = PowerUp{Kind: PowerUpKind(rng.Intn(2)), Active: true}
			fx = append(fx, Effect{Kind: EffectPowerUpSpawned, PowerUp: pu.Kind})
		}
		return fx
	}

	pu.X = 0
	pu.Y = (s.Field.HalfH - r.AmplitudeMargin) * math.Sin(now.Seconds()*r.AngularRate)

	if core.Distance(s.Ball.X, s.Ball.Y, pu.X, pu.Y) >= r.PickupDistance {
		return fx
	}

	pu.Active = false
	fx = append(fx, Effect{Kind: EffectPowerUpCollected, PowerUp: pu.Kind, Side: s.LastHitter})

	switch pu.Kind {
	case PowerUpSize:
		// Nobody has touched the ball since the serve: the boost is lost.
		if s.LastHitter != SideNone {
			p := s.Paddle(s.LastHitter)
			p.Scale = 2
			p.BoostHits = r.BoostHits
		}
	case PowerUpGhost:
		s.Ghost = Ghost{Active: true, Until: now + r.GhostDuration}
	}
	return fx
}

func (r Rules) decayGhost(s *State, now time.Duration) {
	if !s.Ghost.Active {
		return
	}
	if now > s.Ghost.Until {
		s.Ghost.Active = false
		s.Ball.Tint = TintNormal
		return
	}
	s.Ball.Tint = TintGhost
}

// checkScore awards a point when the ball leaves the field sideways.
func (r Rules) checkScore(s *State, rng Rand, fx []Effect) []Effect {
	var scorer Side
	switch {
	case s.Ball.X > s.Field.HalfW:
		s.ScoreA++
		scorer = SideA
	case s.Ball.X < -s.Field.HalfW:
		s.ScoreB++
		scorer = SideB
	default:
		return fx
	}

	fx = append(fx,
		Effect{Kind: EffectSound, Cue: core.CueScore},
		Effect{Kind: EffectScore, Side: scorer},
	)
	r.serve(s, rng)
	return fx
}

// collide resolves a hit on one paddle. A hit needs the ball inside the thin
// band in front of the paddle face and moving toward it, so a ball that is
// still in the band after bouncing cannot hit again.
func (r Rules) collide(s *State, side Side, keys Keys, fx []Effect) []Effect {
	p := s.Paddle(side)
	b := &s.Ball

	toward := 1.0 // B sits on the right
	if side == SideA {
		toward = -1.0
	}

	depth := (p.X - b.X) * toward
	if depth <= 0 || depth >= r.BandDepth || b.DX*toward <= 0 {
		return fx
	}

	offset := b.Y - p.Y
	if math.Abs(offset) >= r.hitRadius(*p) {
		return fx
	}

	b.X = p.X - toward*r.BandDepth
	b.DX *= -r.RallyAccel

	if keys.moving(side) {
		b.DX *= r.PowerHitFactor
		b.Tint = TintPower
	} else if !s.Ghost.Active {
		b.Tint = TintNormal
	}

	b.DY = offset / r.SpinDivisor * math.Abs(b.DX)
	if math.Abs(b.DY) < r.MinVertical {
		if b.DY >= 0 {
			b.DY = r.MinVertical
		} else {
			b.DY = -r.MinVertical
		}
	}

	s.LastHitter = side
	s.Rally++
	s.LongestRally = max(s.LongestRally, s.Rally)
	fx = append(fx, Effect{Kind: EffectSound, Cue: core.CuePaddle, Side: side})

	if p.BoostHits > 0 {
		p.BoostHits--
		if p.BoostHits == 0 {
			p.Scale = 1
		}
	}
	return fx
}

// checkWin ends the round once either score reaches the winning score.
func (r Rules) checkWin(s *State, fx []Effect) []Effect {
	if s.ScoreA < r.WinScore && s.ScoreB < r.WinScore {
		return fx
	}
	s.Active = false
	s.Winner = SideB
	if s.ScoreA >= r.WinScore {
		s.Winner = SideA
	}
	return append(fx, Effect{Kind: EffectWin, Side: s.Winner})
}
