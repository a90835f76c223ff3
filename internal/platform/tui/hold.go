package tui

import (
	"time"

	"github.com/vovakirdan/tui-pinball/internal/core"
)

// Terminals report key presses and auto-repeats but never releases. A held
// action stays down for holdWindow after its last press; the first window is
// longer to bridge the usual delay before auto-repeat starts.
const (
	holdWindow  = 150 * time.Millisecond
	firstWindow = 550 * time.Millisecond
)

// holdable lists the actions that behave like physical buttons.
var holdable = []core.Action{core.ActionFlipLeft, core.ActionFlipRight, core.ActionPlunger}

// HoldTracker turns discrete key presses into held buttons.
type HoldTracker struct {
	until map[core.Action]time.Time
}

// NewHoldTracker creates an empty tracker.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{until: make(map[core.Action]time.Time)}
}

// IsHoldable reports whether a is tracked as a held button.
func IsHoldable(a core.Action) bool {
	for _, h := range holdable {
		if h == a {
			return true
		}
	}
	return false
}

// Press records a key press at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	window := holdWindow
	if !h.Held(a, now) {
		window = firstWindow
	}
	h.until[a] = now.Add(window)
}

// Held reports whether a is still down at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && now.Before(until)
}

// Apply sets every action still held at now on frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for _, a := range holdable {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
}

// Release drops all held actions.
func (h *HoldTracker) Release() {
	clear(h.until)
}
