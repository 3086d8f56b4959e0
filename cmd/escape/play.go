package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/prison-escape/internal/audio"
	"github.com/vovakirdan/prison-escape/internal/config"
	"github.com/vovakirdan/prison-escape/internal/core"
	"github.com/vovakirdan/prison-escape/internal/games/escape"
	"github.com/vovakirdan/prison-escape/internal/platform/tui"
	"github.com/vovakirdan/prison-escape/internal/registry"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing in the terminal. The maze is sized to fit the window.

Controls:
  Arrows/WASD  - Move
  Space        - Shoot in the facing direction
  P/Esc        - Pause
  M            - Mute
  R            - Retry (after the session ended)
  ?            - More keys
  Q/Ctrl+C     - Quit

Examples:
  escape play
  escape play --mute
  escape play --seed 42
  escape play --config ./my-escape.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "escape"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'escape list' to see available games.")
		os.Exit(1)
	}

	// Fail early on a broken config instead of inside the TUI
	escape.SetConfigPath(flagConfig)
	gameCfg, err := config.LoadEscape(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	sound := audio.Open(log.Default().WithPrefix("audio"))
	defer sound.Cleanup()

	runErr := tui.Run(game, rt, tui.Options{
		HoldWindow: time.Duration(gameCfg.Input.HoldMillis) * time.Millisecond,
		Audio:      sound,
		Muted:      flagMute,
		Logger:     log.Default().WithPrefix("tui"),
	})
	if runErr != nil {
		sound.Cleanup()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalSize measures stdout, falling back to 80x24.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
