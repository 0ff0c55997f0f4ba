package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/starfield-pong/internal/core"
)

// tone is one segment of a synthesized cue.
type tone struct {
	freq     float64
	duration time.Duration
}

// cueTones describes the built-in sound of each cue.
var cueTones = map[core.Cue][]tone{
	core.CuePaddle: {{freq: 880, duration: 60 * time.Millisecond}},
	core.CueWall:   {{freq: 440, duration: 50 * time.Millisecond}},
	core.CueScore: {
		{freq: 660, duration: 120 * time.Millisecond},
		{freq: 330, duration: 180 * time.Millisecond},
	},
}

// synthesize renders the built-in sound of a cue into a buffer.
func synthesize(cue core.Cue) (*beep.Buffer, error) {
	buf := beep.NewBuffer(format)
	for _, t := range cueTones[cue] {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, err
		}
		buf.Append(fade(beep.Take(sampleRate.N(t.duration), sine), sampleRate.N(t.duration)))
	}
	return buf, nil
}

// fade applies a short linear attack and release so tones do not click.
func fade(s beep.Streamer, total int) beep.Streamer {
	ramp := sampleRate.N(5 * time.Millisecond)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			gain := 1.0
			if pos < ramp {
				gain = float64(pos) / float64(ramp)
			} else if left := total - pos; left < ramp {
				gain = float64(left) / float64(ramp)
			}
			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}
		return n, ok
	})
}
