package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/prison-escape/internal/core"
	"github.com/vovakirdan/prison-escape/internal/registry"
)

// helpRows is the height reserved below the game for the help bar.
const helpRows = 1

// Options configures the terminal host.
type Options struct {
	HoldWindow time.Duration  // How long a movement key stays held after a press
	Audio      core.AudioSink // Handed to games that play sound
	Muted      bool           // Start with audio muted
	Clock      core.Clock     // Time source for the held-key window
	Logger     *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      *KeyMapper
	input     *HeldInput
	clock     core.Clock
	help      help.Model
	logger    *log.Logger
	gameState core.GameState
	quitting  bool
	err       error
}

// NewModel creates a Bubble Tea model for game and starts its first
// session. cfg.ScreenH is the whole terminal; one row goes to the help bar.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default().WithPrefix("tui")
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = 180 * time.Millisecond
	}

	if au, ok := game.(registry.AudioUser); ok {
		if opts.Audio != nil {
			au.SetAudio(opts.Audio)
		}
		au.SetMuted(opts.Muted)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:   game,
		config: cfg,
		keys:   NewKeyMapper(),
		input:  NewHeldInput(opts.HoldWindow),
		clock:  opts.Clock,
		help:   h,
		logger: opts.Logger,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight(cfg.ScreenH))

	if err := m.reset(); err != nil {
		return m, err
	}
	return m, nil
}

// gameHeight is the part of the terminal the game draws into.
func (m Model) gameHeight(termH int) int {
	return max(termH-helpRows, 0)
}

// reset starts a new session at the current size.
func (m *Model) reset() error {
	rt := m.config
	rt.ScreenH = m.gameHeight(m.config.ScreenH)
	if err := m.game.Reset(rt); err != nil {
		return fmt.Errorf("reset %s: %w", m.game.ID(), err)
	}
	m.input.Reset()
	m.gameState = m.game.State()
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Press(action, m.clock.Now())

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameHeight(msg.Height))
	m.help.Width = msg.Width

	// The map is sized from the terminal, so a resize starts over.
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	if err := m.reset(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Frame(m.clock.Now()))
	m.gameState = result.State

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".escape", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
