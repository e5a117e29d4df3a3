package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg advances the animation by one frame. The id stamps the tick
// chain it belongs to; chains orphaned by a pause, restart, or finish are
// dropped on arrival.
type tickMsg struct {
	id int
	at time.Time
}

func (m Model) tickCmd() tea.Cmd {
	id := m.tickID
	return tea.Tick(m.stage.Sched.Interval, func(t time.Time) tea.Msg {
		return tickMsg{id: id, at: t}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		if msg.id != m.tickID || !m.playing || m.done {
			return m, nil
		}
		m.frame++
		if m.stage.Done(m.frame) {
			m.done = true
			m.playing = false
			m.status = "complete"
			return m, nil
		}
		return m, m.tickCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Next):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Abort):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			if m.done {
				return m, nil
			}
			m.tickID++
			if m.playing {
				m.playing = false
				m.status = "paused"
				return m, nil
			}
			m.playing = true
			m.status = "playing"
			return m, m.tickCmd()
		case key.Matches(msg, m.keys.Restart):
			m.frame = 0
			m.done = false
			m.playing = true
			m.tickID++
			m.status = "playing"
			return m, m.tickCmd()
		case key.Matches(msg, m.keys.Finish):
			m.frame = m.stage.Sched.Frames
			m.done = true
			m.playing = false
			m.tickID++
			m.status = "complete"
		case key.Matches(msg, m.keys.ZoomIn):
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case key.Matches(msg, m.keys.ZoomOut):
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		switch msg.String() {
		case "up":
			m.offsetY--
		case "down":
			m.offsetY++
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}

	case tea.MouseMsg:
		// map the pointer into the plot area (must match View layout)
		headerHeight := 1
		footerHeight := 2
		contentHeight := max(4, m.height-headerHeight-footerHeight)
		contentWidth := max(10, m.width)
		cx, cy := msg.X, msg.Y-headerHeight
		if cx >= 0 && cx < contentWidth && cy >= 0 && cy < contentHeight && m.stage.Bounds.Valid() {
			m.hovering = true
			if x, y, ok := m.cellToWorld(cx, cy, contentWidth, contentHeight); ok {
				m.hoverX, m.hoverY = x, y
			}
			m.hoverMicX, m.hoverMicY = m.nearestVertexMicro(cx*2, cy*4, contentWidth, contentHeight)
		} else {
			m.hovering = false
		}
	}
	return m, nil
}
