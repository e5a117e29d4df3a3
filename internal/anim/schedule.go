package anim

import "time"

// Schedule sets the pacing of one stage: how many animation frames reveal
// the sequence and how long each frame lasts.
type Schedule struct {
	Frames   int
	Interval time.Duration
}

// PrefixLen maps a frame index to the number of visible primitives. It is
// monotonically non-decreasing in frame, 0 at or below frame 0, and equal
// to total from the final frame on. A schedule with no frames shows
// everything at once.
func (s Schedule) PrefixLen(frame, total int) int {
	if total <= 0 {
		return 0
	}
	if s.Frames <= 0 || frame >= s.Frames {
		return total
	}
	if frame <= 0 {
		return 0
	}
	return frame * total / s.Frames
}
