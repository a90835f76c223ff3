// Package tui runs pinball tables in a terminal with Bubble Tea, locally or
// over SSH. Frames are paced by tea.Tick; the table itself runs its fixed
// physics step from the measured frame time.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Frame rate bounds. Above maxFrameRate the terminal cannot keep up and
// frames only add latency.
const (
	defaultFrameRate = 60
	maxFrameRate     = 240
)

// TickMsg requests a frame. It carries the wall-clock time the tick fired,
// which the model uses to measure the real frame length.
type TickMsg time.Time

// frameInterval returns the delay between frames for a requested rate.
func frameInterval(rate int) time.Duration {
	switch {
	case rate <= 0:
		rate = defaultFrameRate
	case rate > maxFrameRate:
		rate = maxFrameRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next frame.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
