package audio

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/starfield-pong/internal/config"
	"github.com/vovakirdan/starfield-pong/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

var allCues = []core.Cue{core.CuePaddle, core.CueWall, core.CueScore}

// SoundManager plays cues on the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	logger      *log.Logger
	buffers     map[core.Cue]*beep.Buffer
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager. Nothing is played until Initialize succeeds.
func NewSoundManager(cfg config.AudioConfig, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SoundManager{
		cfg:     cfg,
		logger:  logger,
		buffers: make(map[core.Cue]*beep.Buffer),
	}
}

// Initialize loads the cue sounds and opens the speaker. Calling it again
// after success is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	for _, cue := range allCues {
		buf, err := sm.loadCue(cue)
		if err != nil {
			return fmt.Errorf("audio: cannot prepare %s cue: %w", cue, err)
		}
		sm.buffers[cue] = buf
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	sm.initialized = true
	return nil
}

// loadCue returns the WAV file for a cue from the sound directory when one
// exists and decodes, and the synthesized tone otherwise.
func (sm *SoundManager) loadCue(cue core.Cue) (*beep.Buffer, error) {
	if sm.cfg.SoundDir != "" {
		path := filepath.Join(sm.cfg.SoundDir, cue.String()+".wav")
		buf, err := loadWAV(path)
		if err == nil {
			return buf, nil
		}
		if !os.IsNotExist(err) {
			sm.logger.Warn("falling back to built-in sound", "cue", cue.String(), "path", path, "error", err)
		}
	}
	return synthesize(cue)
}

// loadWAV decodes a WAV file into a buffer at the speaker's sample rate.
func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, fileFormat, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	if fileFormat.SampleRate == sampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(4, fileFormat.SampleRate, sampleRate, streamer))
	}
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// Play starts a cue and returns immediately. It does nothing before
// initialization, while muted, or after Cleanup.
func (sm *SoundManager) Play(cue core.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	buf, ok := sm.buffers[cue]
	if !ok {
		return
	}

	speaker.Play(withVolume(buf.Streamer(0, buf.Len()), sm.cfg.Volume))
}

// withVolume scales a streamer by a linear volume in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// SetMuted sets the mute flag.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute flag and returns the new value.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether sound is muted.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Cleanup stops all sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
