package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/trainers/agent"
	"github.com/lixenwraith/trainers/config"
	"github.com/lixenwraith/trainers/parameter"
	"github.com/lixenwraith/trainers/policy"
	"github.com/lixenwraith/trainers/sim"
)

// logPresenter records notifications without drawing
type logPresenter struct {
	draws int
	notes []string
}

func (p *logPresenter) DrawMap(v sim.View) { p.draws++ }

func (p *logPresenter) DrawRoster(entries []agent.RosterEntry, cursor int) {
	if cursor >= 0 && cursor < len(entries) {
		log.Printf("Roster cursor %d: %s", cursor, entries[cursor])
	}
}

func (p *logPresenter) Notify(msg string) { p.notes = append(p.notes, msg) }

// runHeadless plays a scripted or passing player and writes the final map and counters to w
func runHeadless(ctx context.Context, cfg config.Config, script string, turns int, listener sim.Listener, w io.Writer) error {
	cmds, err := policy.ParseScript(script)
	if err != nil {
		return err
	}
	if turns == 0 && len(cmds) == 0 {
		turns = parameter.HeadlessDefaultTurns
	}
	// Without a turn limit the run ends when the script runs out
	fallback := policy.CmdPass
	if turns == 0 {
		fallback = policy.CmdNone
	}

	presenter := &logPresenter{}
	s, err := sim.New(sim.Options{
		Trainers:     cfg.Trainers,
		Seed:         cfg.Seed,
		NavMode:      cfg.NavMode(),
		GrowthPasses: cfg.Generation.GrowthPasses,
		Input:        policy.NewScriptSource(cmds, fallback),
		Presenter:    presenter,
		Listener:     listener,
		MaxTurns:     turns,
	})
	if err != nil {
		return err
	}

	if err := s.Run(ctx); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	writeReport(w, s, presenter.notes)
	return nil
}

func writeReport(w io.Writer, s *sim.Simulation, notes []string) {
	fmt.Fprint(w, s.Map().Grid.String())
	fmt.Fprintln(w)

	v := s.View()
	fmt.Fprintf(w, "%-16s %s\n", "session", v.Session)
	fmt.Fprintf(w, "%-16s %d\n", "seed", s.Seed())
	fmt.Fprintf(w, "%-16s %s\n", "map", v.Coord)
	fmt.Fprintf(w, "%-16s %d,%d\n", "player", v.Player.Pos.X, v.Player.Pos.Y)
	for _, m := range s.Status().Snapshot() {
		fmt.Fprintf(w, "%-16s %s\n", m.Key, humanize.Comma(m.Value))
	}
	for _, n := range notes {
		fmt.Fprintf(w, "%-16s %s\n", "note", n)
	}
}
