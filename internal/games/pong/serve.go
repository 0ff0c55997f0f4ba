package pong

// NewState builds the idle state shown in the menu: paddles centred on
// their sides, ball at rest in the middle, no round running.
func (r Rules) NewState(f Field) State {
	x := f.HalfW - r.PaddleInset
	return State{
		Field:   f,
		PaddleA: Paddle{Side: SideA, X: -x, Scale: 1},
		PaddleB: Paddle{Side: SideB, X: x, Scale: 1},
	}
}

// StartOrReset begins a new round. It only acts while no round is running
// and returns ok=false with the state untouched otherwise.
func (r Rules) StartOrReset(s State, rng Rand) (State, []Effect, bool) {
	if s.Active {
		return s, nil, false
	}

	s.ScoreA, s.ScoreB = 0, 0
	s.Winner = SideNone
	s.LongestRally = 0
	s.Tick = 0
	s.PowerUp = PowerUp{}
	for _, p := range []*Paddle{&s.PaddleA, &s.PaddleB} {
		p.Scale = 1
		p.BoostHits = 0
	}
	s.Active = true
	r.serve(&s, rng)

	return s, []Effect{{Kind: EffectScore}}, true
}

// serve puts the ball back in the middle heading for a random side.
func (r Rules) serve(s *State, rng Rand) {
	s.LastHitter = SideNone
	s.Ghost = Ghost{}
	s.Rally = 0

	dx := r.ServeSpeed
	if rng.Intn(2) == 0 {
		dx = -dx
	}
	s.Ball = Ball{
		DX:   dx,
		DY:   (rng.Float64()*2 - 1) * r.ServeSpread,
		Tint: TintNormal,
	}
}
