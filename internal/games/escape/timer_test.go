package escape

import (
	"testing"
	"time"

	"github.com/vovakirdan/prison-escape/internal/core"
)

func TestStopwatchCountsWhileRunning(t *testing.T) {
	clock := &core.ManualClock{T: time.Unix(0, 0)}
	w := NewStopwatch(clock)

	clock.Advance(5 * time.Second)
	if w.Seconds() != 0 {
		t.Errorf("Seconds() = %d before Start, expected 0", w.Seconds())
	}

	w.Start()
	clock.Advance(3500 * time.Millisecond)
	if w.Seconds() != 3 {
		t.Errorf("Seconds() = %d, expected 3", w.Seconds())
	}
}

func TestStopwatchKeepsPartialSecondAcrossPause(t *testing.T) {
	clock := &core.ManualClock{T: time.Unix(0, 0)}
	w := NewStopwatch(clock)
	w.Start()

	// Two stretches of 0.6s only add up to a second if nothing is dropped.
	clock.Advance(600 * time.Millisecond)
	w.Pause()
	clock.Advance(10 * time.Second)
	w.Resume()
	clock.Advance(600 * time.Millisecond)

	if w.Seconds() != 1 {
		t.Errorf("Seconds() = %d, expected 1", w.Seconds())
	}
	if w.Elapsed() != 1200*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 1.2s", w.Elapsed())
	}
}

func TestStopwatchIdempotentPauseResume(t *testing.T) {
	clock := &core.ManualClock{T: time.Unix(0, 0)}
	w := NewStopwatch(clock)
	w.Start()

	clock.Advance(2 * time.Second)
	w.Pause()
	clock.Advance(time.Second)
	w.Pause()
	clock.Advance(time.Second)

	if w.Elapsed() != 2*time.Second {
		t.Errorf("Elapsed() after double pause = %v, expected 2s", w.Elapsed())
	}

	w.Resume()
	clock.Advance(time.Second)
	w.Resume()
	clock.Advance(time.Second)

	if w.Elapsed() != 4*time.Second {
		t.Errorf("Elapsed() after double resume = %v, expected 4s", w.Elapsed())
	}
	if !w.Running() {
		t.Error("Running() = false, expected true")
	}
}

func TestStopwatchStartResets(t *testing.T) {
	clock := &core.ManualClock{T: time.Unix(0, 0)}
	w := NewStopwatch(clock)
	w.Start()
	clock.Advance(30 * time.Second)
	w.Pause()

	w.Start()
	if w.Elapsed() != 0 {
		t.Errorf("Elapsed() after restart = %v, expected 0", w.Elapsed())
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs int
		exp  string
	}{
		{0, "0:00"},
		{9, "0:09"},
		{65, "1:05"},
		{600, "10:00"},
	}

	for _, tc := range tests {
		if got := formatClock(tc.secs); got != tc.exp {
			t.Errorf("formatClock(%d) = %q, expected %q", tc.secs, got, tc.exp)
		}
	}
}
