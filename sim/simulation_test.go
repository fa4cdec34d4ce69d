package sim

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/trainers/agent"
	"github.com/lixenwraith/trainers/navigation"
	"github.com/lixenwraith/trainers/policy"
	"github.com/lixenwraith/trainers/status"
)

type recordingPresenter struct {
	maps    int
	cursors []int
	notes   []string
}

func (p *recordingPresenter) DrawMap(v View) { p.maps++ }

func (p *recordingPresenter) DrawRoster(entries []agent.RosterEntry, cursor int) {
	p.cursors = append(p.cursors, cursor)
}

func (p *recordingPresenter) Notify(msg string) { p.notes = append(p.notes, msg) }

func script(t *testing.T, text string, fallback policy.Command) policy.CommandSource {
	t.Helper()
	cmds, err := policy.ParseScript(text)
	require.NoError(t, err)
	return policy.NewScriptSource(cmds, fallback)
}

func newSim(t *testing.T, opts Options) *Simulation {
	t.Helper()
	s, err := New(opts)
	require.NoError(t, err)
	return s
}

// assertOccupancy checks every agent stands on its own overlay tile and nothing else does
func assertOccupancy(t *testing.T, s *Simulation) {
	t.Helper()
	g := s.Map().Grid
	require.NoError(t, g.Validate())

	agents := s.Agents()
	overlays := 0
	for y := range g.Tiles {
		for _, tile := range g.Tiles[y] {
			if tile.IsOccupant() {
				overlays++
			}
		}
	}
	assert.Equal(t, len(agents), overlays)

	for _, a := range agents {
		assert.True(t, g.IsInterior(a.Pos), "agent %d at %v", a.ID, a.Pos)
		assert.Equal(t, a.Role.Tile(), g.At(a.Pos), "agent %d", a.ID)
		assert.False(t, a.Placeholder.IsOccupant(), "agent %d placeholder %s", a.ID, a.Placeholder)
		assert.GreaterOrEqual(t, a.Cost, 0)
	}
}

func TestNewDefaultScenario(t *testing.T) {
	s := newSim(t, Options{Trainers: 10, Seed: 5, Input: policy.NewScriptSource(nil, policy.CmdPass)})

	agents := s.Agents()
	require.Len(t, agents, 11)
	assert.Equal(t, agent.RolePlayer, agents[0].Role)
	assert.True(t, agents[1].Role.IsSeeker())
	assert.True(t, agents[2].Role.IsSeeker())
	assert.NotEqual(t, agents[1].Role, agents[2].Role)

	assertOccupancy(t, s)
	assert.Equal(t, int64(1), s.Status().Int(status.KeyFieldBuilds))
	assert.Equal(t, "200,200", s.Map().ID)
	assert.NotNil(t, s.Fields().Hiker)
	assert.NotNil(t, s.Fields().Rival)
}

func TestNewValidation(t *testing.T) {
	_, err := New(Options{Trainers: 0, Seed: 1, Input: policy.NewScriptSource(nil, policy.CmdPass)})
	assert.ErrorIs(t, err, agent.ErrTrainerCount)

	_, err = New(Options{Trainers: 3, Seed: 1})
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestRunDeterministic(t *testing.T) {
	const moves = "6 6 2 2 4 4 8 8 9 3 1 7 pass pass t down close 6 2 Q"

	run := func(mode navigation.Mode) *Simulation {
		s := newSim(t, Options{Trainers: 10, Seed: 77, NavMode: mode, Input: script(t, moves, policy.CmdNone)})
		require.NoError(t, s.Run(context.Background()))
		assert.True(t, s.Done())
		return s
	}

	for _, mode := range []navigation.Mode{navigation.ModeSweep, navigation.ModeDijkstra} {
		a, b := run(mode), run(mode)
		assert.Equal(t, a.Map().Grid.String(), b.Map().Grid.String(), mode.String())
		assert.Equal(t, a.Agents(), b.Agents(), mode.String())
		assert.Equal(t, a.Status().Snapshot(), b.Status().Snapshot(), mode.String())
		assertOccupancy(t, a)
	}
}

func TestTickRefillsPerRound(t *testing.T) {
	s := newSim(t, Options{Trainers: 10, Seed: 3, Input: policy.NewScriptSource(nil, policy.CmdPass)})
	ctx := context.Background()

	for i := 0; i < 11; i++ {
		require.NoError(t, s.Tick(ctx))
	}
	assert.Equal(t, int64(11), s.Status().Int(status.KeyTicks))
	assert.Equal(t, int64(1), s.Status().Int(status.KeyRounds))

	require.NoError(t, s.Tick(ctx))
	assert.Equal(t, int64(2), s.Status().Int(status.KeyRounds))
}

func TestRunKeepsOccupancy(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		s := newSim(t, Options{
			Trainers: 20,
			Seed:     seed,
			Input:    policy.NewScriptSource(nil, policy.CmdPass),
			MaxTurns: 60,
		})
		require.NoError(t, s.Run(context.Background()))
		assert.False(t, s.Done())
		assertOccupancy(t, s)

		// Fields are built once per map
		assert.Equal(t, int64(1), s.Status().Int(status.KeyFieldBuilds))
	}
}

func TestRosterModal(t *testing.T) {
	p := &recordingPresenter{}
	s := newSim(t, Options{
		Trainers:  3,
		Seed:      9,
		Input:     script(t, "t down down down up close Q", policy.CmdNone),
		Presenter: p,
	})
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, []int{0, 1, 2, 2, 1}, p.cursors)
	assert.Contains(t, p.notes, "Exiting trainer list..")
	assert.Positive(t, p.maps)
}

func TestListenerEvents(t *testing.T) {
	var events []Event
	s := newSim(t, Options{
		Trainers: 2,
		Seed:     4,
		Input:    script(t, "exit exit Q", policy.CmdNone),
		Listener: ListenerFunc(func(e Event) { events = append(events, e) }),
	})
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, []Event{EventBlocked, EventBlocked, EventQuit}, events)
	assert.Equal(t, int64(2), s.Status().Int(status.KeyPlayerRejects))
}

func TestRunInputExhausted(t *testing.T) {
	s := newSim(t, Options{Trainers: 2, Seed: 4, Input: script(t, "pass", policy.CmdNone)})
	err := s.Run(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.False(t, s.Done())
}

func TestRunContextCancelled(t *testing.T) {
	s := newSim(t, Options{Trainers: 2, Seed: 4, Input: policy.NewScriptSource(nil, policy.CmdPass)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Run(ctx), context.Canceled)
}
