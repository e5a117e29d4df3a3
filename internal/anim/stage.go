package anim

import "fracplot/internal/fractal"

// Mode selects how a stage's frames reveal its sequence.
type Mode int

const (
	// ModePrefix reveals a growing prefix of the point or segment sequence.
	ModePrefix Mode = iota
	// ModeLevels shows one complete subdivision level per frame.
	ModeLevels
)

// Stage holds everything a display backend needs to show one fractal: the
// generated sequence, its plot window, and the animation schedule. Stages
// are built once, up front, and never mutated afterwards.
type Stage struct {
	Title  string
	Hex    string // plot color, "#RRGGBB"
	Bounds fractal.BBox

	Points   []fractal.Point
	Segments []fractal.Segment
	Levels   [][]fractal.Segment

	Mode  Mode
	Sched Schedule
}

// Total returns the number of primitives the prefix schedule walks through.
// Stages animated by level report 0.
func (s Stage) Total() int {
	if s.Mode == ModeLevels {
		return 0
	}
	if len(s.Points) > 0 {
		return len(s.Points)
	}
	return len(s.Segments)
}

// Level returns the subdivision level shown at the given frame, clamped to
// the levels actually present.
func (s Stage) Level(frame int) int {
	top := len(s.Levels) - 1
	if top < 0 || frame < 0 {
		return 0
	}
	if frame > top {
		return top
	}
	return frame
}

// Visible resolves the content drawn at the given frame. Exactly one of the
// returned slices is non-nil for a populated stage; both share backing
// storage with the stage and must not be modified.
func (s Stage) Visible(frame int) ([]fractal.Point, []fractal.Segment) {
	if s.Mode == ModeLevels {
		if len(s.Levels) == 0 {
			return nil, nil
		}
		return nil, s.Levels[s.Level(frame)]
	}
	n := s.Sched.PrefixLen(frame, s.Total())
	if len(s.Points) > 0 {
		return s.Points[:n], nil
	}
	return nil, s.Segments[:n]
}

// Done reports whether the animation has reached its final frame.
func (s Stage) Done(frame int) bool { return frame >= s.Sched.Frames }

// Renderer displays one stage and blocks until its window closes. pos and
// total describe the stage's position in the run, for titles. cont reports
// whether the run should move on to the next stage; a renderer returns
// false when the user asks to abort the whole run.
type Renderer interface {
	Run(st Stage, pos, total int) (cont bool, err error)
}

// Play runs the stages through r in display order, stopping early when the
// renderer fails or reports the run should not continue.
func Play(stages []Stage, r Renderer) error {
	for i, st := range stages {
		cont, err := r.Run(st, i+1, len(stages))
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
	return nil
}
