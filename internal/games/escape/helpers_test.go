package escape

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/prison-escape/internal/config"
	"github.com/vovakirdan/prison-escape/internal/core"
)

// testRuntime yields a 40x22 tile map with the default grid settings.
var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  23,
	TickRate: 60,
	Seed:     12345,
}

// recordingAudio keeps every cue it receives.
type recordingAudio struct {
	sounds  []core.Sound
	ambient []core.AmbientOp
}

func (a *recordingAudio) Play(s core.Sound)         { a.sounds = append(a.sounds, s) }
func (a *recordingAudio) Ambient(op core.AmbientOp) { a.ambient = append(a.ambient, op) }

func (a *recordingAudio) count(s core.Sound) int {
	n := 0
	for _, got := range a.sounds {
		if got == s {
			n++
		}
	}
	return n
}

func (a *recordingAudio) last() core.AmbientOp {
	if len(a.ambient) == 0 {
		return -1
	}
	return a.ambient[len(a.ambient)-1]
}

// newTestGame creates a game on the default config with a manual clock.
func newTestGame(t *testing.T, opts ...Option) (*Game, *core.ManualClock) {
	t.Helper()

	clock := &core.ManualClock{T: time.Unix(1_700_000_000, 0)}
	base := []Option{
		WithConfig(config.DefaultEscapeConfig()),
		WithClock(clock),
		WithLogger(log.New(io.Discard)),
	}
	g := New(append(base, opts...)...)
	if err := g.Reset(testRuntime); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	return g, clock
}

// newTestState returns a running state with no walls or entities.
func newTestState() *State {
	cfg := config.DefaultEscapeConfig()
	return &State{
		Cfg:     cfg,
		MapW:    40,
		MapH:    22,
		Tile:    cfg.Grid.TileSize,
		Player:  NewPlayer(cfg.Player, 40, 22, cfg.Grid.TileSize),
		Freeze:  FreezeEffect{MaxDuration: cfg.Effects.FreezeDuration},
		Session: Session{Running: true},
	}
}

// stationaryGuard never notices the player and never moves.
func stationaryGuard(x, y float64, health int) *Guard {
	return &Guard{
		X: x, Y: y, W: 36, H: 36,
		Speed:       0.6,
		Health:      health,
		MaxCooldown: 100,
		State:       GuardPatrol,
		PatrolA:     Point{x, y},
		PatrolB:     Point{x, y},
		TargetB:     true,
		Facing:      DirLeft,
	}
}

// assertNear compares floats that went through arithmetic.
func assertNear(t *testing.T, label string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, expected %v", label, got, want)
	}
}
