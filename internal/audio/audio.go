// Package audio plays the game's sound cues through the beep speaker.
// Playback is fire-and-forget: every failure is swallowed so the game
// never notices a missing sound.
package audio

import "github.com/vovakirdan/starfield-pong/internal/core"

// Player plays sound cues.
type Player interface {
	Play(cue core.Cue)
}

// Muter controls the mute flag of a player.
type Muter interface {
	SetMuted(muted bool)
	ToggleMute() bool
	Muted() bool
}

// Nop is a silent player used when audio is disabled. It still tracks the
// mute flag so the indicator behaves the same way.
type Nop struct {
	muted bool
}

// SetMuted sets the mute flag.
func (n *Nop) SetMuted(muted bool) {
	n.muted = muted
}

// Play does nothing.
func (n *Nop) Play(core.Cue) {}

// ToggleMute flips the mute flag and returns the new value.
func (n *Nop) ToggleMute() bool {
	n.muted = !n.muted
	return n.muted
}

// Muted reports whether sound is muted.
func (n *Nop) Muted() bool {
	return n.muted
}
