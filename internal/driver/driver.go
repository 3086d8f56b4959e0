// Package driver runs a game without a terminal: synchronously as fast as
// possible, or paced by a wall-clock ticker.
package driver

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/prison-escape/internal/core"
)

const (
	DefaultTickLength = time.Second / 60
)

// Stepper advances a game by one tick.
type Stepper interface {
	Step(in core.InputFrame) core.StepResult
}

// Summary describes how a run ended.
type Summary struct {
	Ticks  uint64          // Steps issued by the driver
	Last   core.StepResult // Result of the final step
	Reason string          // "game over", "tick limit" or "cancelled"
}

// Stop reasons reported in Summary.
const (
	ReasonGameOver  = "game over"
	ReasonTickLimit = "tick limit"
	ReasonCancelled = "cancelled"
)

type Driver struct {
	tickLength time.Duration
	game       Stepper
	input      InputSource
	observers  []func(core.StepResult)
	logger     *log.Logger
	ticks      uint64
}

func NewDriver(game Stepper, opts ...DriverOpt) *Driver {
	d := &Driver{
		tickLength: DefaultTickLength,
		game:       game,
		input:      IdleInput{},
		logger:     log.Default().WithPrefix("driver"),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Tick feeds one input frame to the game.
func (d *Driver) Tick(ctx context.Context) (core.StepResult, error) {
	if err := ctx.Err(); err != nil {
		return core.StepResult{}, err
	}

	res := d.game.Step(d.input.Next(d.ticks))
	d.ticks++
	for _, obs := range d.observers {
		obs(res)
	}
	return res, nil
}

// Run steps the game back to back until it ends, maxTicks steps were
// issued (0 means no limit) or ctx is cancelled.
func (d *Driver) Run(ctx context.Context, maxTicks uint64) (Summary, error) {
	var last core.StepResult
	for {
		if maxTicks > 0 && d.ticks >= maxTicks {
			return d.stop(last, ReasonTickLimit), nil
		}

		res, err := d.Tick(ctx)
		if err != nil {
			return d.stop(last, ReasonCancelled), nil
		}
		last = res

		if res.State.GameOver {
			return d.stop(last, ReasonGameOver), nil
		}
	}
}

// Start is Run paced by a wall-clock ticker.
func (d *Driver) Start(ctx context.Context, maxTicks uint64) (Summary, error) {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	var last core.StepResult
	for {
		select {
		case <-ctx.Done():
			return d.stop(last, ReasonCancelled), nil
		case <-ticker.C:
			res, err := d.Tick(ctx)
			if err != nil {
				return d.stop(last, ReasonCancelled), nil
			}
			last = res

			if res.State.GameOver {
				return d.stop(last, ReasonGameOver), nil
			}
			if maxTicks > 0 && d.ticks >= maxTicks {
				return d.stop(last, ReasonTickLimit), nil
			}
		}
	}
}

func (d *Driver) stop(last core.StepResult, reason string) Summary {
	d.logger.Debug("driver stopped", "reason", reason, "ticks", d.ticks)
	return Summary{Ticks: d.ticks, Last: last, Reason: reason}
}
