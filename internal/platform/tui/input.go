package tui

import (
	"time"

	"github.com/vovakirdan/prison-escape/internal/core"
)

// opposite pairs each movement with the direction it cancels.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HeldInput turns key presses into per-tick input frames.
//
// Terminals report key presses but never releases, so a movement key counts
// as held for a short window after its last press. Auto-repeat keeps
// refreshing the window while the key is down. Other actions are one-shot
// and appear in exactly one frame.
type HeldInput struct {
	window  time.Duration
	held    map[core.Action]time.Time // Movement action -> expiry
	pending core.InputFrame
}

// NewHeldInput creates an input collaborator with the given hold window.
func NewHeldInput(window time.Duration) *HeldInput {
	return &HeldInput{
		window:  window,
		held:    make(map[core.Action]time.Time),
		pending: core.NewInputFrame(),
	}
}

// Press records a key press at now.
func (h *HeldInput) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !a.IsMovement() {
		h.pending.Set(a)
		return
	}

	// Switching direction releases the old one at once.
	delete(h.held, opposite[a])
	h.held[a] = now.Add(h.window)
}

// Held reports whether a movement action is still held at now.
func (h *HeldInput) Held(a core.Action, now time.Time) bool {
	expiry, ok := h.held[a]
	return ok && now.Before(expiry)
}

// Frame builds the input frame for the tick at now and consumes the
// one-shot actions.
func (h *HeldInput) Frame(now time.Time) core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()

	for a, expiry := range h.held {
		if !now.Before(expiry) {
			delete(h.held, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Reset forgets every held key and pending action.
func (h *HeldInput) Reset() {
	clear(h.held)
	h.pending.Clear()
}
