package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"fracplot/internal/anim"
)

type Model struct {
	stage anim.Stage
	pos   int
	total int

	width  int
	height int

	frame   int
	playing bool
	done    bool
	aborted bool
	tickID  int

	zoom    float64
	offsetX int
	offsetY int

	status string

	keys keyMap
	help help.Model
	prog progress.Model

	// hover state
	hovering  bool
	hoverMicX int
	hoverMicY int
	hoverX    float64
	hoverY    float64
}

// New builds the model for one stage. pos and total locate the stage in
// the run and only show up in the header.
func New(st anim.Stage, pos, total int) Model {
	return Model{
		stage:   st,
		pos:     pos,
		total:   total,
		playing: true,
		zoom:    1.0,
		status:  "playing",
		keys:    defaultKeyMap(),
		help:    help.New(),
		prog:    progress.New(progress.WithSolidFill(st.Hex), progress.WithoutPercentage()),
	}
}

func (m Model) Init() tea.Cmd { return m.tickCmd() }
