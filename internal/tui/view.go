package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"fracplot/internal/anim"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	headerHeight := 1
	contentWidth := max(10, m.width)

	// Header
	title := titleStyle.Render(fmt.Sprintf(" %s (%d/%d) ", m.stage.Title, m.pos, m.total))
	header := lipgloss.NewStyle().Width(contentWidth).Render(title)

	// Footer: progress row, then status and help with hover coords bottom-right
	label := dimStyle.Render(" " + m.progressLabel() + " ")
	bar := m.prog
	bar.Width = max(10, contentWidth-lipgloss.Width(label))
	progRow := lipgloss.JoinHorizontal(lipgloss.Bottom, bar.ViewAs(m.percent()), label)

	status := dimStyle.Render(" " + m.status + " ")
	helpView := m.help.View(m.keys)
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.4f y=%.4f  ", m.hoverX, m.hoverY))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, helpView)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Bottom, left, right)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left, progRow, bottomRow))

	// Plot viewport fills whatever the chrome leaves over
	contentHeight := max(4, m.height-headerHeight-lipgloss.Height(footer))
	body := lipgloss.NewStyle().Width(contentWidth).Height(contentHeight).Render(m.renderPlot(contentWidth, contentHeight))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// percent reports schedule completion for the progress bar.
func (m Model) percent() float64 {
	f := m.stage.Sched.Frames
	if f <= 0 {
		return 1.0
	}
	p := float64(m.frame) / float64(f)
	if p > 1 {
		return 1.0
	}
	return p
}

// progressLabel describes how much of the sequence is on screen.
func (m Model) progressLabel() string {
	if m.stage.Mode == anim.ModeLevels {
		return fmt.Sprintf("level %d/%d", m.stage.Level(m.frame), max(0, len(m.stage.Levels)-1))
	}
	pts, segs := m.stage.Visible(m.frame)
	unit := "points"
	if len(m.stage.Segments) > 0 {
		unit = "segments"
	}
	return fmt.Sprintf("%d/%d %s", len(pts)+len(segs), m.stage.Total(), unit)
}
