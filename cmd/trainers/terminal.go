package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trainers/config"
	"github.com/lixenwraith/trainers/core"
	"github.com/lixenwraith/trainers/input"
	"github.com/lixenwraith/trainers/parameter"
	"github.com/lixenwraith/trainers/render"
	"github.com/lixenwraith/trainers/sim"
)

// runTerminal drives the simulation from keyboard input on an initialized screen
func runTerminal(ctx context.Context, screen tcell.Screen, cfg config.Config, turns int, listener sim.Listener) error {
	w, h := screen.Size()
	if w < parameter.ScreenMinWidth || h < parameter.ScreenMinHeight {
		return fmt.Errorf("terminal %dx%d is smaller than %dx%d", w, h, parameter.ScreenMinWidth, parameter.ScreenMinHeight)
	}

	// Poller: PollEvent returns nil once the screen is finalized
	events := make(chan tcell.Event, parameter.PollBufferSize)
	core.Go(func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	renderer := render.NewTerminalRenderer(screen)
	source := input.NewSource(events, nil)
	source.OnResize = renderer.Redraw

	s, err := sim.New(sim.Options{
		Trainers:     cfg.Trainers,
		Seed:         cfg.Seed,
		NavMode:      cfg.NavMode(),
		GrowthPasses: cfg.Generation.GrowthPasses,
		Input:        source,
		Presenter:    renderer,
		Listener:     listener,
		MaxTurns:     turns,
	})
	if err != nil {
		return err
	}
	return s.Run(ctx)
}
