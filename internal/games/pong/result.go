package pong

import "time"

// RoundResult summarises a finished round.
type RoundResult struct {
	ScoreA       int
	ScoreB       int
	Winner       Side
	Duration     time.Duration // Game clock time from start to win
	LongestRally int
	Ticks        uint64
}

// resultOf builds the summary of a round that has just been won.
func resultOf(s State, duration time.Duration) RoundResult {
	return RoundResult{
		ScoreA:       s.ScoreA,
		ScoreB:       s.ScoreB,
		Winner:       s.Winner,
		Duration:     duration,
		LongestRally: s.LongestRally,
		Ticks:        s.Tick,
	}
}
