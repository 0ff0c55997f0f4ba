package core

// Cue identifies a sound effect requested by the game.
type Cue int

const (
	CuePaddle Cue = iota // Ball hit a paddle
	CueWall              // Ball bounced off the top or bottom wall
	CueScore             // A point was scored
)

// String returns the cue name, also used as the sound file base name.
func (c Cue) String() string {
	switch c {
	case CuePaddle:
		return "bounce"
	case CueWall:
		return "wall"
	case CueScore:
		return "score"
	default:
		return "unknown"
	}
}
