package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"fracplot/internal/anim"
)

// Runner plays stages in full-screen terminal windows, one after another.
type Runner struct{}

// Run blocks until the stage's window closes. It reports false when the
// user aborts the whole run with ctrl+c.
func (Runner) Run(st anim.Stage, pos, total int) (bool, error) {
	p := tea.NewProgram(New(st, pos, total), tea.WithAltScreen(), tea.WithMouseAllMotion())
	out, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := out.(Model)
	if !ok {
		return false, nil
	}
	return !m.aborted, nil
}
