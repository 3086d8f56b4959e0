package driver

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/prison-escape/internal/core"
)

type DriverOpt func(*Driver)

func WithTickLength(tickLength time.Duration) DriverOpt {
	return func(d *Driver) {
		d.tickLength = tickLength
	}
}

func WithInput(input InputSource) DriverOpt {
	return func(d *Driver) {
		d.input = input
	}
}

// WithObserver registers a callback that sees every step result.
func WithObserver(fn func(core.StepResult)) DriverOpt {
	return func(d *Driver) {
		d.observers = append(d.observers, fn)
	}
}

func WithLogger(logger *log.Logger) DriverOpt {
	return func(d *Driver) {
		d.logger = logger
	}
}
