// Package tui provides the Bubble Tea integration for the snake
// platform: the frame loop, key-to-tilt input mapping, board rendering
// and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per display frame. Game ticks run at a fixed
// divisor of the frame rate (see stepEveryFrames).
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at
// the specified rate.
func frameCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
