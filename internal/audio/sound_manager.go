// Package audio plays the game's sound cues through the system speaker.
// Every tone is synthesized, so there are no asset files to ship.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/vovakirdan/prison-escape/internal/core"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// AmbientState is where the background loop currently is.
type AmbientState int

const (
	AmbientStopped AmbientState = iota
	AmbientPlaying
	AmbientPaused
)

// String returns the state name.
func (s AmbientState) String() string {
	switch s {
	case AmbientStopped:
		return "stopped"
	case AmbientPlaying:
		return "playing"
	case AmbientPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// SoundManager manages all game audio. It implements core.AudioSink.
// Without an initialized speaker it still tracks the ambient state and
// silently drops playback.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ambient     *beep.Ctrl
	state       AmbientState
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a new sound manager
func NewSoundManager(logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default().WithPrefix("audio")
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize sets up the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops every sound and detaches from the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.state = AmbientStopped
	if !sm.initialized {
		sm.ambient = nil
		return
	}

	speaker.Lock()
	if sm.ambient != nil {
		sm.ambient.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.ambient = nil
	sm.initialized = false
}

// Initialized reports whether the speaker is available.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// State returns the ambient loop state.
func (sm *SoundManager) State() AmbientState {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.state
}

// Play starts a one-shot cue on top of whatever is playing.
func (sm *SoundManager) Play(s core.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var streamer beep.Streamer
	switch s {
	case core.SoundShoot:
		streamer = beep.Take(sampleRate.N(time.Millisecond*90), NewChirpGenerator(sampleRate, 900, 300))
	case core.SoundEscape:
		streamer = beep.Take(sampleRate.N(time.Millisecond*900), NewFanfareGenerator(sampleRate))
	default:
		sm.logger.Warn("unknown sound cue", "cue", int(s))
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Ambient drives the background loop. Resuming a loop that was never
// started starts it.
func (sm *SoundManager) Ambient(op core.AmbientOp) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	switch op {
	case core.AmbientStart:
		sm.startAmbient()
	case core.AmbientStop:
		sm.detachAmbient()
		sm.state = AmbientStopped
	case core.AmbientPause:
		if sm.state != AmbientPlaying {
			return
		}
		sm.setAmbientPaused(true)
		sm.state = AmbientPaused
	case core.AmbientResume:
		switch sm.state {
		case AmbientPaused:
			sm.setAmbientPaused(false)
			sm.state = AmbientPlaying
		case AmbientStopped:
			sm.startAmbient()
		}
	default:
		sm.logger.Warn("unknown ambient op", "op", int(op))
	}
}

// startAmbient rewinds the loop by replacing it with a fresh streamer.
// Callers hold sm.mu.
func (sm *SoundManager) startAmbient() {
	sm.detachAmbient()
	sm.state = AmbientPlaying

	if !sm.initialized {
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewDroneGenerator(sampleRate), Paused: false}
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
	sm.ambient = ctrl
}

// setAmbientPaused flips the loop's Ctrl under the speaker lock.
// Callers hold sm.mu.
func (sm *SoundManager) setAmbientPaused(paused bool) {
	if sm.ambient == nil || !sm.initialized {
		return
	}
	speaker.Lock()
	sm.ambient.Paused = paused
	speaker.Unlock()
}

// detachAmbient drops the current loop. A Ctrl without a streamer ends,
// so the mixer removes it. Callers hold sm.mu.
func (sm *SoundManager) detachAmbient() {
	if sm.ambient != nil && sm.initialized {
		speaker.Lock()
		sm.ambient.Streamer = nil
		speaker.Unlock()
	}
	sm.ambient = nil
}

var _ core.AudioSink = (*SoundManager)(nil)

// Open returns a SoundManager with the speaker initialized when possible.
// A missing audio device is logged and the manager keeps working silently.
func Open(logger *log.Logger) *SoundManager {
	sm := NewSoundManager(logger)
	if err := sm.Initialize(); err != nil {
		sm.logger.Warn("audio unavailable, continuing without sound", "error", err)
	}
	return sm
}
