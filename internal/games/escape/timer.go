package escape

import (
	"fmt"
	"time"

	"github.com/vovakirdan/prison-escape/internal/core"
)

// Stopwatch measures wall-clock play time. Time spent paused or stopped is
// not counted, and a partial second is kept across pause and resume.
type Stopwatch struct {
	clock   core.Clock
	running bool
	since   time.Time     // When the current running stretch began
	banked  time.Duration // Total of the finished stretches
}

// NewStopwatch creates a stopped stopwatch reading from clock.
func NewStopwatch(clock core.Clock) *Stopwatch {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Stopwatch{clock: clock}
}

// Start zeroes the stopwatch and starts it.
func (w *Stopwatch) Start() {
	w.banked = 0
	w.since = w.clock.Now()
	w.running = true
}

// Pause stops counting. Pausing a paused stopwatch does nothing.
func (w *Stopwatch) Pause() {
	if !w.running {
		return
	}
	w.banked += w.clock.Now().Sub(w.since)
	w.running = false
}

// Resume continues counting. Resuming a running stopwatch does nothing.
func (w *Stopwatch) Resume() {
	if w.running {
		return
	}
	w.since = w.clock.Now()
	w.running = true
}

// Running reports whether the stopwatch is counting.
func (w *Stopwatch) Running() bool {
	return w.running
}

// Elapsed returns the counted time.
func (w *Stopwatch) Elapsed() time.Duration {
	if w.running {
		return w.banked + w.clock.Now().Sub(w.since)
	}
	return w.banked
}

// Seconds returns the counted time in whole seconds.
func (w *Stopwatch) Seconds() int {
	return int(w.Elapsed() / time.Second)
}

// formatClock renders seconds as m:ss.
func formatClock(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
