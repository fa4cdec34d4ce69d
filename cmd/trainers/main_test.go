package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/trainers/audio"
	"github.com/lixenwraith/trainers/config"
	"github.com/lixenwraith/trainers/sim"
	"github.com/lixenwraith/trainers/status"
)

func TestFlagsOverrideConfig(t *testing.T) {
	parser, f := newParser()
	require.NoError(t, parser.Parse([]string{"trainers", "-n", "7", "--seed", "99", "--nav", "dijkstra", "-a"}))

	cfg := f.apply(config.Default())
	assert.Equal(t, 7, cfg.Trainers)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "dijkstra", cfg.Navigation.Mode)
	assert.True(t, cfg.Audio.Enabled)
	assert.False(t, cfg.Debug)
}

func TestFlagsKeepConfigWhenUnset(t *testing.T) {
	parser, f := newParser()
	require.NoError(t, parser.Parse([]string{"trainers"}))

	base := config.Default()
	base.Trainers = 30
	base.Seed = 5
	assert.Equal(t, base, f.apply(base))
}

func TestRunRejectsTrainerCount(t *testing.T) {
	for _, n := range []string{"0", "51"} {
		parser, f := newParser()
		require.NoError(t, parser.Parse([]string{"trainers", "--numtrainers", n, "--headless"}))

		assert.ErrorIs(t, f.apply(config.Default()).Validate(), config.ErrTrainerCount, n)
		assert.ErrorIs(t, run(f), config.ErrTrainerCount, n)
	}
}

func TestFlagsRejectUnknownNavMode(t *testing.T) {
	parser, _ := newParser()
	assert.Error(t, parser.Parse([]string{"trainers", "--nav", "astar"}))
}

type fakePlayer struct{ cues []audio.Cue }

func (p *fakePlayer) Play(c audio.Cue) { p.cues = append(p.cues, c) }

func TestCueListener(t *testing.T) {
	p := &fakePlayer{}
	l := cueListener{player: p}
	for _, e := range []sim.Event{sim.EventEnter, sim.EventBlocked, sim.EventExit, sim.EventQuit, sim.Event(99)} {
		l.OnEvent(e)
	}
	assert.Equal(t, []audio.Cue{audio.CueEnter, audio.CueBlocked, audio.CueExit, audio.CueQuit}, p.cues)
}

func TestRunHeadlessReport(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 42

	var out bytes.Buffer
	require.NoError(t, runHeadless(context.Background(), cfg, "", 5, nil, &out))

	report := out.String()
	lines := strings.Split(report, "\n")
	require.Greater(t, len(lines), 21)
	assert.Len(t, lines[0], 80)
	assert.Contains(t, report, status.KeyTicks)
	assert.Contains(t, report, "seed             42")
	assert.Contains(t, report, "map              200,200")
}

func TestRunHeadlessScriptEndsOnQuit(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 7
	cfg.Trainers = 3

	var out bytes.Buffer
	p := &fakePlayer{}
	require.NoError(t, runHeadless(context.Background(), cfg, "pass t close Q", 0, cueListener{player: p}, &out))

	assert.Contains(t, out.String(), "Exiting trainer list..")
	assert.Equal(t, []audio.Cue{audio.CueQuit}, p.cues)
}

func TestRunHeadlessScriptEndsOnExhaustion(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 8

	var out bytes.Buffer
	require.NoError(t, runHeadless(context.Background(), cfg, "pass pass", 0, nil, &out))
	assert.Contains(t, out.String(), status.KeyRounds)
}

func TestRunHeadlessBadScript(t *testing.T) {
	var out bytes.Buffer
	err := runHeadless(context.Background(), config.Default(), "jump", 0, nil, &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunTerminalRejectsSmallScreen(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	require.NoError(t, scr.Init())
	defer scr.Fini()
	scr.SetSize(40, 10)

	err := runTerminal(context.Background(), scr, config.Default(), 1, nil)
	assert.ErrorContains(t, err, "smaller than")
}
