package main

import (
	"flag"
	"log"

	"fracplot/internal/anim"
	"fracplot/internal/tui"
	"fracplot/internal/window"
)

func main() {
	cfg := anim.DefaultConfig()
	var display string
	flag.IntVar(&cfg.FernPoints, "fern-points", cfg.FernPoints, "Points drawn for the Barnsley fern.")
	flag.IntVar(&cfg.SierpinskiPoints, "sierpinski-points", cfg.SierpinskiPoints, "Points drawn for the Sierpinski triangle.")
	flag.IntVar(&cfg.KochDepth, "depth", cfg.KochDepth, "Koch curve subdivision depth.")
	flag.IntVar(&cfg.Warmup, "warmup", 0, "Iterations discarded before recording stochastic points.")
	flag.IntVar(&cfg.Frames, "frames", 0, "Animation frames per stage (0 = per-stage default).")
	flag.DurationVar(&cfg.Interval, "interval", 0, "Delay between frames (0 = per-stage default).")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Random seed for the stochastic stages (0 = wall clock).")
	flag.BoolVar(&cfg.KochByLevel, "koch-levels", false, "Animate the Koch curve one subdivision level per frame.")
	flag.StringVar(&display, "display", "tui", "Display backend: tui or window.")
	flag.Parse()

	stages, err := anim.BuildStages(cfg)
	if err != nil {
		log.Fatal(err)
	}

	switch display {
	case "tui":
		err = anim.Play(stages, tui.Runner{})
	case "window":
		err = window.Run(stages)
	default:
		log.Fatalf("unknown display %q (want tui or window)", display)
	}
	if err != nil {
		log.Fatal(err)
	}
}
