package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/prison-escape/internal/core"
	"github.com/vovakirdan/prison-escape/internal/driver"
	"github.com/vovakirdan/prison-escape/internal/games/escape"
	"github.com/vovakirdan/prison-escape/internal/registry"
)

var (
	flagTicks     uint64
	flagRealtime  bool
	flagSimConfig string
	flagWidth     int
	flagHeight    int
)

var simCmd = &cobra.Command{
	Use:   "sim [game]",
	Short: "Run a headless simulation",
	Long: `Runs the game without a terminal UI, driven by a seeded random walk
that moves and shoots. The same seed and size always produce the same run,
so the final snapshot hash can be compared across machines.

The map is sized from the terminal unless --width/--height are given.

Examples:
  escape sim --seed 7
  escape sim --ticks 600 --width 80 --height 24
  escape sim --realtime --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagTicks, "ticks", 3600, "Maximum ticks to run (0 = until the session ends)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at --fps instead of running flat out")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().IntVar(&flagWidth, "width", 0, "Screen width in cells (0 = terminal width)")
	simCmd.Flags().IntVar(&flagHeight, "height", 0, "Screen height in cells (0 = terminal height)")
}

// sessionReporter is implemented by games that can summarize a run.
type sessionReporter interface {
	Session() escape.SessionInfo
	Snapshot() escape.Snapshot
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := "escape"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'escape list' to see available games", gameID)
	}

	width, height := terminalSize()
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	escape.SetConfigPath(flagSimConfig)
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	if err := game.Reset(rt); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger := log.Default().WithPrefix("sim")
	logger.Info("simulation started", "game", gameID, "seed", seed, "size", fmt.Sprintf("%dx%d", width, height))

	d := driver.NewDriver(game,
		driver.WithInput(driver.NewRandomWalk(seed)),
		driver.WithTickLength(time.Second/time.Duration(max(flagFPS, 1))),
		driver.WithLogger(logger),
	)

	var sum driver.Summary
	if flagRealtime {
		sum, err = d.Start(ctx, flagTicks)
	} else {
		sum, err = d.Run(ctx, flagTicks)
	}
	if err != nil {
		return err
	}

	printSummary(cmd, game, sum, seed)
	return nil
}

func printSummary(cmd *cobra.Command, game registry.Game, sum driver.Summary, seed int64) {
	out := cmd.OutOrStdout()
	state := game.State()

	fmt.Fprintf(out, "game:     %s\n", game.ID())
	fmt.Fprintf(out, "seed:     %d\n", seed)
	fmt.Fprintf(out, "ticks:    %d (%s)\n", sum.Ticks, sum.Reason)
	fmt.Fprintf(out, "score:    %d\n", state.Score)

	rep, ok := game.(sessionReporter)
	if !ok {
		return
	}
	info := rep.Session()
	snap := rep.Snapshot()
	fmt.Fprintf(out, "status:   %s\n", info.Status)
	fmt.Fprintf(out, "health:   %d\n", info.Health)
	fmt.Fprintf(out, "ammo:     %d\n", info.Ammo)
	fmt.Fprintf(out, "guards:   %d left\n", info.GuardsLeft)
	fmt.Fprintf(out, "snapshot: %016x\n", snap.Hash())
}
