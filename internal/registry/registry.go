// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the CLI and the
// headless driver to discover and instantiate them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/prison-escape/internal/core"
)

// Game is the interface a simulation exposes to its hosts.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The host handles input mapping, frame timing and terminal output.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "escape").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display (e.g., "Prison Escape").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after the session ended.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	// An error means the game cannot be played with this configuration.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to semantic actions (Up, Shoot, Pause, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (game over, won, paused).
	State() core.GameState
}

// AudioUser is implemented by games that emit audio cues.
// Hosts with a sound device hand their sink over before the first Reset.
type AudioUser interface {
	SetAudio(sink core.AudioSink)
	SetMuted(muted bool)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
