// Package tui provides the Bubble Tea frontend for Tile Tap.
// It handles the terminal UI loop, input mapping, frame timing and the
// session results screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tiletap/internal/core"
)

// maxFrameDelta caps the simulated time of one tick, so a stalled terminal
// does not eat the countdown in a single step.
const maxFrameDelta = 0.25

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds simulated by a tick at now. The first tick
// simulates one nominal frame; later ticks use the wall-clock gap, clamped.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		return 1 / float64(max(tickRate, 1))
	}
	return core.Clamp(now.Sub(prev).Seconds(), 0, maxFrameDelta)
}
