// Package escape implements Prison Escape: a top-down maze where the player
// dodges and shoots patrolling guards, grabs freeze power-ups and ammo, and
// runs for the exit before their health runs out.
package escape

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/prison-escape/internal/config"
	"github.com/vovakirdan/prison-escape/internal/core"
	"github.com/vovakirdan/prison-escape/internal/registry"
)

// ErrSessionActive is returned by Retry while the session is still running.
var ErrSessionActive = errors.New("session still running")

// Session status names, used in logs and snapshots.
const (
	StatusRunning = "running"
	StatusPaused  = "paused"
	StatusEscaped = "escaped"
	StatusCaught  = "caught"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Option customizes a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading the configuration from disk.
func WithConfig(cfg config.EscapeConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.cfgLoaded = true
	}
}

// WithClock sets the wall clock behind the session timer.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithAudio sets the audio collaborator.
func WithAudio(a core.AudioSink) Option {
	return func(g *Game) {
		g.audio = a
	}
}

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// Game is the tick orchestrator. It owns the session state and runs the
// subsystems once per Step in a fixed order.
type Game struct {
	state *State
	level *Level
	rng   *rand.Rand
	timer *Stopwatch

	// Collaborators
	clock  core.Clock
	audio  core.AudioSink
	logger *log.Logger
	muted  bool

	// Configuration
	runtime   core.RuntimeConfig
	cfg       config.EscapeConfig
	cfgLoaded bool

	// Layout (computed from screen size)
	mapW, mapH     int
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new escape game.
func New(opts ...Option) *Game {
	g := &Game{
		clock: core.SystemClock{},
		audio: core.NopAudio{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.Default().WithPrefix("escape")
	}
	g.timer = NewStopwatch(g.clock)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "escape"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Prison Escape"
}

// SetAudio replaces the audio collaborator.
func (g *Game) SetAudio(sink core.AudioSink) {
	if sink == nil {
		sink = core.NopAudio{}
	}
	g.audio = sink
}

// SetMuted sets the mute flag without touching the ambient loop.
func (g *Game) SetMuted(muted bool) {
	g.muted = muted
}

// Reset initializes a new session: it rebuilds the map, guards and pickups,
// resets the player, projectiles, freeze and flags, and restarts the timer
// and the ambient loop.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime

	if !g.cfgLoaded {
		cfg, err := config.LoadEscape(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		g.cfg = cfg
		g.cfgLoaded = true
	}

	g.calculateLayout()
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	if g.screenTooSmall {
		g.state = nil
		g.timer = NewStopwatch(g.clock)
		return nil
	}

	return g.initialize()
}

// calculateLayout derives the map size in tiles from the screen size.
func (g *Game) calculateLayout() {
	grid := g.cfg.Grid

	g.mapW = g.runtime.ScreenW / grid.CellsPerTile
	g.mapH = g.runtime.ScreenH - grid.HUDRows

	g.minScreenW = grid.MinWidth * grid.CellsPerTile
	g.minScreenH = grid.MinHeight + grid.HUDRows
	g.screenTooSmall = g.mapW < grid.MinWidth || g.mapH < grid.MinHeight
}

// initialize builds a fresh session on the current layout.
func (g *Game) initialize() error {
	tileSize := g.cfg.Grid.TileSize

	level, err := BuildMap(g.mapW, g.mapH, tileSize)
	if err != nil {
		return fmt.Errorf("build map: %w", err)
	}

	freeze, ammo, err := CreatePowerups(g.rng, level.Walls, g.mapW, g.mapH, tileSize, g.cfg.Pickups)
	if err != nil {
		return fmt.Errorf("place pickups: %w", err)
	}

	g.level = level
	g.state = &State{
		Cfg:         g.cfg,
		MapW:        g.mapW,
		MapH:        g.mapH,
		Tile:        tileSize,
		Walls:       level.Walls,
		Exit:        level.Exit,
		Player:      NewPlayer(g.cfg.Player, g.mapW, g.mapH, tileSize),
		Guards:      BuildGuards(g.cfg.Guards, g.mapW, g.mapH, tileSize),
		FreezeItems: freeze,
		AmmoItems:   ammo,
		Freeze:      FreezeEffect{MaxDuration: g.cfg.Effects.FreezeDuration},
		Session:     Session{Running: true},
	}

	g.timer.Start()
	if !g.muted {
		g.audio.Ambient(core.AmbientStart)
	}

	g.logger.Info("session started",
		"map", fmt.Sprintf("%dx%d", g.mapW, g.mapH),
		"guards", len(g.state.Guards),
		"seed", g.runtime.Seed,
	)
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.state == nil {
		return core.StepResult{State: g.State()}
	}
	s := g.state

	if in.Has(core.ActionMute) {
		g.ToggleMute()
	}

	// Handle retry
	if s.Session.Ended() {
		if in.Has(core.ActionRestart) {
			if err := g.Retry(); err != nil {
				g.logger.Error("retry failed", "error", err)
			}
		}
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if s.Session.Paused {
		return g.result()
	}

	if in.Has(core.ActionShoot) {
		PlayerShoot(s)
	}

	g.advance(in)
	g.flushCues()

	return g.result()
}

// advance runs the subsystems in order and stops as soon as the session ends.
func (g *Game) advance(in core.InputFrame) {
	s := g.state
	s.Session.Tick++

	MovePlayer(&s.Player, in, s.Walls)

	AdvanceProjectiles(s)
	if s.Session.Ended() {
		g.finish()
		return
	}

	UpdateGuards(s)

	ResolvePickups(s)
	if s.Session.Ended() {
		g.finish()
		return
	}

	DecayFreeze(s)
}

// finish stops the timer and the ambient loop once the session ended.
func (g *Game) finish() {
	g.timer.Pause()
	g.audio.Ambient(core.AmbientStop)

	g.logger.Info("session ended",
		"outcome", g.status(),
		"time", formatClock(g.timer.Seconds()),
		"ticks", g.state.Session.Tick,
		"health", g.state.Player.Health,
		"guards", len(g.state.Guards),
	)
}

// flushCues forwards the tick's sound cues unless muted.
func (g *Game) flushCues() {
	for _, cue := range g.state.DrainCues() {
		if !g.muted {
			g.audio.Play(cue)
		}
	}
}

// Pause suspends the session. Pausing twice does nothing.
func (g *Game) Pause() {
	if g.state == nil || !g.state.Session.Running || g.state.Session.Paused {
		return
	}
	g.state.Session.Paused = true
	g.timer.Pause()
	if !g.muted {
		g.audio.Ambient(core.AmbientPause)
	}
}

// Resume continues a paused session. Resuming twice does nothing.
func (g *Game) Resume() {
	if g.state == nil || !g.state.Session.Running || !g.state.Session.Paused {
		return
	}
	g.state.Session.Paused = false
	g.timer.Resume()
	if !g.muted {
		g.audio.Ambient(core.AmbientResume)
	}
}

// TogglePause pauses a running session or resumes a paused one.
func (g *Game) TogglePause() {
	if g.state == nil {
		return
	}
	if g.state.Session.Paused {
		g.Resume()
	} else {
		g.Pause()
	}
}

// Retry starts a new session on the same layout. Only valid once the
// current session has ended.
func (g *Game) Retry() error {
	if g.state != nil && g.state.Session.Running {
		return ErrSessionActive
	}
	if g.screenTooSmall {
		return fmt.Errorf("%w: need %dx%d", ErrMapTooSmall, g.minScreenW, g.minScreenH)
	}
	return g.initialize()
}

// ToggleMute flips the mute flag, pausing or resuming the ambient loop.
func (g *Game) ToggleMute() {
	g.muted = !g.muted
	if g.muted {
		g.audio.Ambient(core.AmbientPause)
		return
	}
	if g.state != nil && g.state.Session.Running && !g.state.Session.Paused {
		g.audio.Ambient(core.AmbientResume)
	}
}

// Muted reports whether audio cues are suppressed.
func (g *Game) Muted() bool {
	return g.muted
}

// result builds the StepResult for the current tick.
func (g *Game) result() core.StepResult {
	return core.StepResult{Tick: g.state.Session.Tick, State: g.State()}
}

// status names the session's current phase.
func (g *Game) status() string {
	s := g.state.Session
	switch {
	case s.Running && s.Paused:
		return StatusPaused
	case s.Running:
		return StatusRunning
	case s.Won:
		return StatusEscaped
	default:
		return StatusCaught
	}
}

// State returns the current game state. Score counts guards taken down.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	s := g.state.Session
	return core.GameState{
		Score:    len(g.cfg.Guards.Roster) - len(g.state.Guards),
		GameOver: s.Ended(),
		Won:      s.Won,
		Paused:   s.Paused,
	}
}

// SessionInfo is a read-only summary of the session for hosts and the HUD.
type SessionInfo struct {
	Status        string
	Tick          uint64
	Elapsed       int // Wall-clock seconds, excluding pauses
	Health        int
	Ammo          int
	GuardsLeft    int
	FreezeActive  bool
	FreezeSeconds int
	Muted         bool
}

// Session returns a summary of the current session.
func (g *Game) Session() SessionInfo {
	if g.state == nil {
		return SessionInfo{Muted: g.muted}
	}
	s := g.state
	return SessionInfo{
		Status:        g.status(),
		Tick:          s.Session.Tick,
		Elapsed:       g.timer.Seconds(),
		Health:        s.Player.Health,
		Ammo:          s.Player.Ammo,
		GuardsLeft:    len(s.Guards),
		FreezeActive:  s.Freeze.Active,
		FreezeSeconds: freezeSeconds(s.Freeze.Duration, g.runtime.TickRate),
		Muted:         g.muted,
	}
}

// freezeSeconds converts remaining freeze ticks to whole seconds, rounding up.
func freezeSeconds(ticks, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return (ticks + tickRate - 1) / tickRate
}

// Register the game with the registry
func init() {
	registry.Register("escape", func() registry.Game {
		return New()
	})
}
