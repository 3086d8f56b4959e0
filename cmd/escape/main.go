// escape is a terminal prison-escape game: dodge and shoot the guards, grab
// freeze power-ups and ammo, and reach the exit alive.
//
// Usage:
//
//	escape play [game]   - Play in the terminal (default: escape)
//	escape sim [game]    - Run a headless simulation with random input
//	escape list          - List available games
//	escape config        - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file (play defaults to ~/.escape/escape.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/prison-escape/internal/games/escape"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "escape",
	Short: "Prison Escape - break out of a guarded maze in your terminal",
	Long: `Prison Escape is a top-down terminal game. Guards patrol the corridors
and chase you on sight; shoot them, freeze them with power-ups, pick up
ammo and run for the exit before your health runs out.

Available commands:
  play     - Play in the terminal
  sim      - Headless simulation with random input
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  escape play
  escape play --mute --seed 42
  escape sim --ticks 3600 --seed 7
  escape config > my-escape.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (play defaults to ~/.escape/escape.log)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging configures the default logger. While the TUI owns the
// terminal, logs go to a file.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	path := flagLogFile
	if path == "" && cmd.Name() == playCmd.Name() {
		path = "~/.escape/escape.log"
	}
	if path == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logCloser = f
	log.SetOutput(f)
	return nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
