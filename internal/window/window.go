package window

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"fracplot/internal/anim"
)

const tps = 60

const updateStep = time.Second / tps

// Run plays all stages in one desktop window, in order. The underlying
// game loop owns the process and cannot be restarted, so every stage
// shares a single RunGame call and q advances to the next stage in place.
// It blocks until the last stage is dismissed or the run is quit.
func Run(stages []anim.Stage) error {
	if len(stages) == 0 {
		return nil
	}
	g := &game{stages: stages}
	g.initStage()
	ebiten.SetTPS(tps)
	return ebiten.RunGame(g)
}

type game struct {
	stages []anim.Stage
	idx    int

	frame   int
	playing bool
	done    bool
	acc     time.Duration

	view
}

func (g *game) stage() anim.Stage { return g.stages[g.idx] }

// resetPlayback rewinds the playback and drawing state for the current
// stage.
func (g *game) resetPlayback() {
	st := g.stage()
	g.frame = 0
	g.acc = 0
	g.playing = true
	g.done = false
	g.resetView(st)
}

func (g *game) initStage() {
	g.resetPlayback()
	st := g.stage()
	ebiten.SetWindowTitle(fmt.Sprintf("fracplot - %s (%d/%d)", st.Title, g.idx+1, len(g.stages)))
	ebiten.SetWindowSize(g.w, g.h)
}

func (g *game) nextStage() error {
	g.idx++
	if g.idx >= len(g.stages) {
		return ebiten.Termination
	}
	g.initStage()
	return nil
}

func (g *game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	g.advance(updateStep)
	return nil
}

func (g *game) handleInput() error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl && (inpututil.IsKeyJustPressed(ebiten.KeyC) || inpututil.IsKeyJustPressed(ebiten.KeyQ)) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return g.nextStage()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !g.done {
		g.playing = !g.playing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetPlayback()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.finish()
	}
	return nil
}

// advance accumulates wall time and steps frames at the stage interval.
// Several frames can elapse in one update when the interval is shorter
// than the tick.
func (g *game) advance(step time.Duration) {
	if !g.playing || g.done {
		return
	}
	iv := g.stage().Sched.Interval
	if iv <= 0 {
		g.finish()
		return
	}
	g.acc += step
	for g.acc >= iv {
		g.acc -= iv
		g.frame++
		g.dirty = true
		if g.stage().Done(g.frame) {
			g.done = true
			g.playing = false
			break
		}
	}
}

func (g *game) finish() {
	g.frame = g.stage().Sched.Frames
	g.done = true
	g.playing = false
	g.dirty = true
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
