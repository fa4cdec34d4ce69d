package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"

	"github.com/lixenwraith/trainers/audio"
	"github.com/lixenwraith/trainers/config"
	"github.com/lixenwraith/trainers/core"
	"github.com/lixenwraith/trainers/service"
	"github.com/lixenwraith/trainers/sim"
)

func main() {
	parser, f := newParser()
	if err := parser.Parse(os.Args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		os.Exit(1)
	}

	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(f *flags) error {
	cfg, err := config.Load(*f.config)
	if err != nil {
		return err
	}
	cfg = f.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	hub := service.NewHub()
	logs := &logService{debug: cfg.Debug}
	if err := hub.Register(logs); err != nil {
		return err
	}

	var listener sim.Listener
	if cfg.Audio.Enabled {
		sound := audio.NewService(audio.Config{Volume: cfg.Audio.Volume}, logs.Name())
		if err := hub.Register(sound); err != nil {
			return err
		}
		listener = cueListener{player: sound}
	}

	if err := hub.InitAll(); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if *f.headless || *f.script != "" || !interactive {
		err = runHeadless(ctx, cfg, *f.script, *f.turns, listener, os.Stdout)
	} else {
		err = runInteractive(ctx, cfg, *f.turns, listener)
	}

	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		log.Printf("Run failed: %v", err)
		return err
	}
	return nil
}

func runInteractive(ctx context.Context, cfg config.Config, turns int, listener sim.Listener) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic Recovery: restore the terminal before printing the crash
	core.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mTRAINERS CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	})
	defer core.SetCrashHandler(nil)
	defer func() {
		core.HandleCrash(recover())
	}()
	defer screen.Fini()

	return runTerminal(ctx, screen, cfg, turns, listener)
}
