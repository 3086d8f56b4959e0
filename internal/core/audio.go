package core

// Sound is a one-shot audio cue.
type Sound int

const (
	SoundShoot  Sound = iota // Player fired
	SoundEscape              // Player reached the exit
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// AmbientOp controls the background loop.
type AmbientOp int

const (
	AmbientStart  AmbientOp = iota // Rewind and play
	AmbientStop                    // Stop at game over
	AmbientPause                   // Pause, keeping the position
	AmbientResume                  // Continue from the paused position
)

// String returns the operation name.
func (op AmbientOp) String() string {
	switch op {
	case AmbientStart:
		return "start"
	case AmbientStop:
		return "stop"
	case AmbientPause:
		return "pause"
	case AmbientResume:
		return "resume"
	default:
		return "unknown"
	}
}

// AudioSink receives fire-and-forget audio cues from a game.
// Implementations must not block and must handle their own playback failures.
type AudioSink interface {
	Play(s Sound)
	Ambient(op AmbientOp)
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) Play(Sound)        {}
func (NopAudio) Ambient(AmbientOp) {}
