package tui

import (
	"time"

	"github.com/vovakirdan/sidestep/internal/core"
)

// HoldTracker emulates held movement keys.
// Terminals report presses and auto-repeats but never releases, so a
// direction counts as held until hold window has passed since its latest
// press. Pressing one direction releases the other.
type HoldTracker struct {
	window time.Duration
	left   time.Time // Latest left press, zero when released
	right  time.Time // Latest right press, zero when released
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) HoldTracker {
	return HoldTracker{window: window}
}

// Press records a movement key press at now. Other actions are ignored.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.left = now
		h.right = time.Time{}
	case core.ActionRight:
		h.right = now
		h.left = time.Time{}
	}
}

// Held reports whether a movement action is still held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	var pressed time.Time
	switch a {
	case core.ActionLeft:
		pressed = h.left
	case core.ActionRight:
		pressed = h.right
	default:
		return false
	}
	return !pressed.IsZero() && now.Sub(pressed) < h.window
}

// Apply sets the movement intents that are held at now.
func (h *HoldTracker) Apply(in *core.Intents, now time.Time) {
	if h.Held(core.ActionLeft, now) {
		in.Set(core.ActionLeft)
	}
	if h.Held(core.ActionRight, now) {
		in.Set(core.ActionRight)
	}
}

// Release drops both directions.
func (h *HoldTracker) Release() {
	h.left = time.Time{}
	h.right = time.Time{}
}
