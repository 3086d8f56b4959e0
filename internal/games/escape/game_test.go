package escape

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pixil98/go-testutil"
	"github.com/vovakirdan/prison-escape/internal/config"
	"github.com/vovakirdan/prison-escape/internal/core"
)

func TestGameReset(t *testing.T) {
	g, _ := newTestGame(t)
	s := g.state

	testutil.AssertEqual(t, "map width", s.MapW, 40)
	testutil.AssertEqual(t, "map height", s.MapH, 22)
	testutil.AssertEqual(t, "guards", len(s.Guards), 10)
	testutil.AssertEqual(t, "freeze items", len(s.FreezeItems), 3)
	testutil.AssertEqual(t, "ammo packs", len(s.AmmoItems), 5)
	testutil.AssertEqual(t, "health", s.Player.Health, 100)
	testutil.AssertEqual(t, "ammo", s.Player.Ammo, 10)
	testutil.AssertEqual(t, "running", s.Session.Running, true)
	testutil.AssertEqual(t, "paused", s.Session.Paused, false)
	testutil.AssertEqual(t, "won", s.Session.Won, false)

	state := g.State()
	if state.GameOver || state.Paused || state.Won {
		t.Errorf("State() = %+v, expected a fresh running session", state)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		switch {
		case i%50 == 0:
			inputs[i] = core.FrameOf(core.ActionShoot)
		case i%200 < 100:
			inputs[i] = core.FrameOf(core.ActionRight)
		default:
			inputs[i] = core.FrameOf(core.ActionDown, core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g, _ := newTestGame(t)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestGameSeedChangesItems(t *testing.T) {
	g1, _ := newTestGame(t)

	rt := testRuntime
	rt.Seed = 54321
	g2 := New(WithConfig(config.DefaultEscapeConfig()), WithLogger(log.New(io.Discard)))
	if err := g2.Reset(rt); err != nil {
		t.Fatal(err)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() == s2.Hash() {
		t.Error("different seeds should place items differently")
	}
}

func TestGameShootGuardEndToEnd(t *testing.T) {
	g, _ := newTestGame(t)
	s := g.state
	s.Guards = []*Guard{stationaryGuard(200, 40, 10)}
	s.FreezeItems = nil
	s.AmmoItems = nil
	s.Player.Ammo = 1

	g.Step(core.FrameOf(core.ActionShoot))
	testutil.AssertEqual(t, "ammo", s.Player.Ammo, 0)

	for range 40 {
		g.Step(core.NewInputFrame())
	}

	testutil.AssertEqual(t, "guards", len(s.Guards), 0)
	testutil.AssertEqual(t, "bullets", len(s.PlayerBullets), 0)
}

func TestGameExitWinsSameTick(t *testing.T) {
	audio := &recordingAudio{}
	g, _ := newTestGame(t, WithAudio(audio))
	s := g.state
	s.Player.X = s.Exit.X + 2
	s.Player.Y = s.Exit.Y + 2
	s.Player.Health = 1
	s.Player.Ammo = 0

	res := g.Step(core.NewInputFrame())

	testutil.AssertEqual(t, "won", s.Session.Won, true)
	testutil.AssertEqual(t, "running", s.Session.Running, false)
	testutil.AssertEqual(t, "game over", res.State.GameOver, true)
	testutil.AssertEqual(t, "result won", res.State.Won, true)
	testutil.AssertEqual(t, "tick", res.Tick, uint64(1))
	testutil.AssertEqual(t, "escape cue", audio.count(core.SoundEscape), 1)
	testutil.AssertEqual(t, "ambient", audio.last(), core.AmbientStop)
	testutil.AssertEqual(t, "status", g.Session().Status, StatusEscaped)
}

func TestGameGuardBulletLoss(t *testing.T) {
	g, clock := newTestGame(t)
	s := g.state
	s.Guards = nil
	s.Player.Health = 5
	s.GuardBullets = []GuardBullet{{
		X: s.Player.X + s.Player.W + 3, Y: s.Player.Y + 10,
		Size: 4, Speed: 6, Damage: 10, DX: -1,
	}}

	clock.Advance(3 * time.Second)
	res := g.Step(core.NewInputFrame())

	testutil.AssertEqual(t, "health", s.Player.Health, -5)
	testutil.AssertEqual(t, "game over", res.State.GameOver, true)
	testutil.AssertEqual(t, "won", res.State.Won, false)
	testutil.AssertEqual(t, "status", g.Session().Status, StatusCaught)

	// The timer stops with the session.
	clock.Advance(10 * time.Second)
	testutil.AssertEqual(t, "elapsed", g.Session().Elapsed, 3)

	// Nothing moves after the session ended.
	tick := s.Session.Tick
	g.Step(core.FrameOf(core.ActionRight))
	testutil.AssertEqual(t, "tick", s.Session.Tick, tick)
}

func TestGameFreezeEndToEnd(t *testing.T) {
	g, _ := newTestGame(t)
	s := g.state
	s.FreezeItems = []Pickup{{Kind: PickupFreeze, X: 40, Y: 40, Size: 20}}
	s.AmmoItems = nil

	g.Step(core.NewInputFrame())
	testutil.AssertEqual(t, "freeze active", s.Freeze.Active, true)

	positions := make([]Point, len(s.Guards))
	for i, gd := range s.Guards {
		if !gd.Frozen {
			t.Fatalf("guard %d not frozen after pickup", i)
		}
		positions[i] = Point{gd.X, gd.Y}
	}

	maxTicks := s.Freeze.MaxDuration
	for tick := 1; tick < maxTicks; tick++ {
		g.Step(core.NewInputFrame())

		for i, gd := range s.Guards {
			if (Point{gd.X, gd.Y}) != positions[i] {
				t.Fatalf("guard %d moved while frozen on tick %d", i, tick)
			}
			if want := tick < maxTicks-1; gd.Frozen != want {
				t.Fatalf("guard %d Frozen = %v on tick %d, expected %v", i, gd.Frozen, tick, want)
			}
		}
		testutil.AssertEqual(t, "no shots while frozen", len(s.GuardBullets), 0)
	}
	testutil.AssertEqual(t, "freeze active", s.Freeze.Active, false)

	g.Step(core.NewInputFrame())
	moved := false
	for i, gd := range s.Guards {
		if (Point{gd.X, gd.Y}) != positions[i] {
			moved = true
		}
	}
	if !moved {
		t.Error("guards should move again once the freeze ended")
	}
}

func TestGamePauseResumeIdempotent(t *testing.T) {
	audio := &recordingAudio{}
	g, clock := newTestGame(t, WithAudio(audio))

	clock.Advance(2 * time.Second)
	g.Pause()
	g.Pause()
	clock.Advance(5 * time.Second)

	testutil.AssertEqual(t, "paused", g.State().Paused, true)
	testutil.AssertEqual(t, "elapsed while paused", g.Session().Elapsed, 2)

	g.Resume()
	g.Resume()
	clock.Advance(1 * time.Second)

	testutil.AssertEqual(t, "paused", g.State().Paused, false)
	testutil.AssertEqual(t, "elapsed", g.Session().Elapsed, 3)
	exp := []core.AmbientOp{core.AmbientStart, core.AmbientPause, core.AmbientResume}
	if !slices.Equal(audio.ambient, exp) {
		t.Errorf("ambient ops = %v, expected %v", audio.ambient, exp)
	}
}

func TestGamePauseInput(t *testing.T) {
	g, _ := newTestGame(t)
	s := g.state
	startX := s.Player.X

	g.Step(core.FrameOf(core.ActionPause))
	testutil.AssertEqual(t, "paused", s.Session.Paused, true)
	tick := s.Session.Tick

	g.Step(core.FrameOf(core.ActionRight))
	testutil.AssertEqual(t, "x while paused", s.Player.X, startX)
	testutil.AssertEqual(t, "tick while paused", s.Session.Tick, tick)

	g.Step(core.FrameOf(core.ActionPause, core.ActionRight))
	testutil.AssertEqual(t, "paused", s.Session.Paused, false)
	testutil.AssertEqual(t, "x after resume", s.Player.X, startX+s.Player.Speed)
}

func TestGameRetry(t *testing.T) {
	g, _ := newTestGame(t)

	if err := g.Retry(); !errors.Is(err, ErrSessionActive) {
		t.Errorf("Retry() while running error = %v, expected ErrSessionActive", err)
	}

	g.state.Player.Health = 0
	g.state.endSession(false)
	g.state.PlayerBullets = []PlayerBullet{{X: 100, Y: 100, Size: 4, Speed: 8}}

	if err := g.Retry(); err != nil {
		t.Fatalf("Retry() error = %v", err)
	}

	s := g.state
	testutil.AssertEqual(t, "running", s.Session.Running, true)
	testutil.AssertEqual(t, "health", s.Player.Health, 100)
	testutil.AssertEqual(t, "bullets", len(s.PlayerBullets), 0)
	testutil.AssertEqual(t, "guards", len(s.Guards), 10)
	testutil.AssertEqual(t, "tick", s.Session.Tick, uint64(0))
}

func TestGameRestartInput(t *testing.T) {
	g, _ := newTestGame(t)
	g.state.endSession(false)

	g.Step(core.FrameOf(core.ActionRestart))

	testutil.AssertEqual(t, "running", g.state.Session.Running, true)
	testutil.AssertEqual(t, "game over", g.State().GameOver, false)
}

func TestGameRestartIgnoredWhileRunning(t *testing.T) {
	g, _ := newTestGame(t)
	g.state.AmmoItems = nil
	g.state.Player.Ammo = 3

	g.Step(core.FrameOf(core.ActionRestart))

	testutil.AssertEqual(t, "ammo", g.state.Player.Ammo, 3)
}

func TestGameMute(t *testing.T) {
	audio := &recordingAudio{}
	g, _ := newTestGame(t, WithAudio(audio))
	g.state.AmmoItems = nil

	g.Step(core.FrameOf(core.ActionMute))
	testutil.AssertEqual(t, "muted", g.Muted(), true)
	testutil.AssertEqual(t, "ambient", audio.last(), core.AmbientPause)

	g.Step(core.FrameOf(core.ActionShoot))
	testutil.AssertEqual(t, "shoot cues", audio.count(core.SoundShoot), 0)
	testutil.AssertEqual(t, "ammo", g.state.Player.Ammo, 9)

	g.Step(core.FrameOf(core.ActionMute))
	testutil.AssertEqual(t, "muted", g.Muted(), false)
	testutil.AssertEqual(t, "ambient", audio.last(), core.AmbientResume)

	g.Step(core.FrameOf(core.ActionShoot))
	testutil.AssertEqual(t, "shoot cues", audio.count(core.SoundShoot), 1)
}

func TestGameStartsMuted(t *testing.T) {
	audio := &recordingAudio{}
	clock := &core.ManualClock{T: time.Unix(0, 0)}
	g := New(WithConfig(config.DefaultEscapeConfig()), WithClock(clock), WithLogger(log.New(io.Discard)))
	g.SetAudio(audio)
	g.SetMuted(true)

	if err := g.Reset(testRuntime); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, "ambient ops", len(audio.ambient), 0)
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New(WithConfig(config.DefaultEscapeConfig()), WithLogger(log.New(io.Discard)))
	if err := g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60}); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	res := g.Step(core.FrameOf(core.ActionRight))
	testutil.AssertEqual(t, "tick", res.Tick, uint64(0))

	if err := g.Retry(); !errors.Is(err, ErrMapTooSmall) {
		t.Errorf("Retry() error = %v, expected ErrMapTooSmall", err)
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected a too-small message")
	}
}

func TestGameResetPlacementFailure(t *testing.T) {
	cfg := config.DefaultEscapeConfig()
	cfg.Pickups.ItemSize = 1000
	cfg.Pickups.MaxPlacementAttempts = 20

	g := New(WithConfig(cfg), WithLogger(log.New(io.Discard)))
	err := g.Reset(testRuntime)
	if !errors.Is(err, ErrNoFreeTile) {
		t.Errorf("Reset() error = %v, expected ErrNoFreeTile", err)
	}
}

func TestGameResetConfigError(t *testing.T) {
	SetConfigPath("/nonexistent/escape.yaml")
	defer SetConfigPath("")

	g := New(WithLogger(log.New(io.Discard)))
	if err := g.Reset(testRuntime); err == nil {
		t.Error("Reset() should fail when the config file is missing")
	}
}

func TestGameRender(t *testing.T) {
	g, clock := newTestGame(t)
	clock.Advance(65 * time.Second)

	screen := core.NewScreen(80, 23)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Health: 100", "Ammo: 10", "Guards: 10", "Time: 1:05"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	testutil.AssertEqual(t, "border", screen.Get(0, 1), WallChar)
	testutil.AssertEqual(t, "exit", screen.Get(77, 21), ExitChar)
	testutil.AssertEqual(t, "player", screen.Get(2, 2), '▶')
}

func TestGameRenderOverlays(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(80, 23)

	g.Pause()
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("expected PAUSED overlay")
	}

	g.Resume()
	g.state.endSession(false)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "CAUGHT!") || !strings.Contains(out, "Press R to retry") {
		t.Error("expected CAUGHT! overlay")
	}

	g.state.Session.Won = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "ESCAPED! Time: 0:00") {
		t.Error("expected ESCAPED! overlay")
	}
}

func TestGameRenderFreezeCountdown(t *testing.T) {
	g, _ := newTestGame(t)
	activateFreeze(g.state)
	g.state.Freeze.Duration = 61

	screen := core.NewScreen(80, 23)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Freeze: 2s") {
		t.Errorf("HUD %q missing freeze countdown", screen.Row(0))
	}
}
