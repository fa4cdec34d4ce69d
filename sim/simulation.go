package sim

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/trainers/agent"
	"github.com/lixenwraith/trainers/navigation"
	"github.com/lixenwraith/trainers/policy"
	"github.com/lixenwraith/trainers/scheduler"
	"github.com/lixenwraith/trainers/status"
	"github.com/lixenwraith/trainers/terrain"
	"github.com/lixenwraith/trainers/world"
)

var ErrNoInput = errors.New("no command source")

// Options configures a simulation
type Options struct {
	Trainers     int
	Seed         int64 // 0 = wall clock
	NavMode      navigation.Mode
	GrowthPasses int // 0 = default

	Input     policy.CommandSource
	Presenter Presenter // Optional
	Listener  Listener  // Optional

	// MaxTurns stops Run after this many player turns (0 = until quit)
	MaxTurns int
}

// Simulation owns the world, the agent table and the scheduler
// All methods run on one goroutine
type Simulation struct {
	ID   uuid.UUID
	seed int64
	opts Options

	rng    *rand.Rand
	world  *world.Store
	active *world.Map
	table  *agent.Table
	queue  *scheduler.Queue
	nav    *navigation.FieldCache
	ref    terrain.Point // Field reference, the player's starting tile
	env    *policy.Env

	status *status.Registry

	// Cached counters
	statTicks    *atomic.Int64
	statRounds   *atomic.Int64
	statAccepted *atomic.Int64
	statBlocked  *atomic.Int64
	statRejects  *atomic.Int64
	statBuilds   *atomic.Int64

	playerTurns int
	quit        bool
}

// New generates the starting map, assigns and places agents and builds the cost fields
func New(opts Options) (*Simulation, error) {
	if opts.Input == nil {
		return nil, ErrNoInput
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	roles, err := agent.AssignRoles(opts.Trainers, rng)
	if err != nil {
		return nil, err
	}

	store := world.NewStore(opts.GrowthPasses)
	m, err := store.Generate(world.Center(), rng)
	if err != nil {
		return nil, fmt.Errorf("generate start map: %w", err)
	}

	table := agent.NewTable(roles)
	if err := agent.Place(table, m.Grid, rng); err != nil {
		return nil, fmt.Errorf("place agents: %w", err)
	}

	reg := status.NewRegistry()
	s := &Simulation{
		ID:     uuid.New(),
		seed:   seed,
		opts:   opts,
		rng:    rng,
		world:  store,
		active: m,
		table:  table,
		queue:  scheduler.NewQueue(table.Len()),
		nav:    navigation.NewFieldCache(opts.NavMode),
		ref:    table.Player().Pos,
		status: reg,

		statTicks:    reg.Ints.Get(status.KeyTicks),
		statRounds:   reg.Ints.Get(status.KeyRounds),
		statAccepted: reg.Ints.Get(status.KeyMovesAccepted),
		statBlocked:  reg.Ints.Get(status.KeyMovesBlocked),
		statRejects:  reg.Ints.Get(status.KeyPlayerRejects),
		statBuilds:   reg.Ints.Get(status.KeyFieldBuilds),
	}
	reg.Strings.Get(status.KeySession).Store(s.ID.String())
	reg.Strings.Get(status.KeyNavMode).Store(opts.NavMode.String())

	s.env = &policy.Env{
		Grid:  m.Grid,
		Hiker: s.nav.Hiker(),
		Rival: s.nav.Rival(),
		Rand:  rng,
		Input: opts.Input,
		Hooks: s,
	}
	s.refreshFields()

	log.Printf("Session %s: seed %d, %d trainers, map %s, nav %s", s.ID, seed, opts.Trainers, m.ID, opts.NavMode)
	return s, nil
}

// refreshFields rebuilds the seeker fields when the active map changed
func (s *Simulation) refreshFields() {
	fields, rebuilt := s.nav.Update(s.active.ID, s.active.Grid, s.ref)
	s.env.Fields = fields
	if rebuilt {
		s.statBuilds.Add(1)
		log.Printf("Cost fields rebuilt for map %s at (%d,%d)", s.active.ID, s.ref.X, s.ref.Y)
	}
}

// Tick runs one agent turn
// The queue is refilled from the table when it drains; the stepped snapshot is written back before returning
func (s *Simulation) Tick(ctx context.Context) error {
	if s.queue.Len() == 0 {
		s.queue.Refill(s.table)
		s.statRounds.Add(1)
	}
	a, ok := s.queue.Pop()
	if !ok {
		return nil
	}
	s.refreshFields()

	if a.Role == agent.RolePlayer {
		s.draw()
	}

	out, err := policy.Step(ctx, s.env, &a)
	if err != nil {
		return fmt.Errorf("agent %d (%s): %w", a.ID, a.Role, err)
	}
	if err := s.table.Apply(a); err != nil {
		return err
	}
	s.statTicks.Add(1)

	switch {
	case out.Moved:
		s.statAccepted.Add(1)
	case out.Blocked:
		s.statBlocked.Add(1)
	}

	if a.Role != agent.RolePlayer {
		return nil
	}

	s.playerTurns++
	switch out.Action {
	case policy.CmdEnterBuilding:
		s.emit(EventEnter)
	case policy.CmdExitBuilding:
		s.emit(EventExit)
	case policy.CmdQuit:
		s.emit(EventQuit)
		s.quit = true
		log.Printf("Session %s: quit after %d ticks", s.ID, s.statTicks.Load())
		return nil
	}
	if out.Moved || out.Action == policy.CmdEnterBuilding || out.Action == policy.CmdExitBuilding {
		s.draw()
	}
	return nil
}

// Run ticks until the player quits, MaxTurns player turns pass or an error occurs
func (s *Simulation) Run(ctx context.Context) error {
	for !s.quit {
		if s.opts.MaxTurns > 0 && s.playerTurns >= s.opts.MaxTurns {
			log.Printf("Session %s: turn limit %d reached", s.ID, s.opts.MaxTurns)
			return nil
		}
		if err := s.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Done reports whether the player quit
func (s *Simulation) Done() bool {
	return s.quit
}

// Seed returns the effective seed
func (s *Simulation) Seed() int64 {
	return s.seed
}

// Map returns the active map
func (s *Simulation) Map() *world.Map {
	return s.active
}

// Agents returns snapshots of the authoritative table
func (s *Simulation) Agents() []agent.Agent {
	return s.table.All()
}

// Status returns the run counters
func (s *Simulation) Status() *status.Registry {
	return s.status
}

// Fields returns the current seeker fields
func (s *Simulation) Fields() navigation.Fields {
	return s.env.Fields
}

// View captures the state for presenters
func (s *Simulation) View() View {
	return View{
		Grid:    s.active.Grid,
		Player:  s.table.Player(),
		Coord:   s.active.Coord,
		Session: s.ID.String(),
		Ticks:   s.statTicks.Load(),
		Rounds:  s.statRounds.Load(),
	}
}

func (s *Simulation) draw() {
	if s.opts.Presenter != nil {
		s.opts.Presenter.DrawMap(s.View())
	}
}

func (s *Simulation) emit(e Event) {
	if s.opts.Listener != nil {
		s.opts.Listener.OnEvent(e)
	}
}

// --- policy.PlayerHooks ---

// OpenRoster browses the other trainers until the view is closed
func (s *Simulation) OpenRoster(ctx context.Context) error {
	entries := agent.Roster(s.table)
	cursor := 0
	for {
		if s.opts.Presenter != nil {
			s.opts.Presenter.DrawRoster(entries, cursor)
		}
		cmd, err := s.opts.Input.Next(ctx)
		if err != nil {
			return err
		}
		switch cmd {
		case policy.CmdLineUp:
			if cursor > 0 {
				cursor--
			}
		case policy.CmdLineDown:
			if cursor < len(entries)-1 {
				cursor++
			}
		case policy.CmdCloseView:
			s.Notify("Exiting trainer list..")
			s.draw()
			return nil
		}
	}
}

// Notify forwards a status message
func (s *Simulation) Notify(msg string) {
	log.Printf("Notify: %s", msg)
	if s.opts.Presenter != nil {
		s.opts.Presenter.Notify(msg)
	}
}

// Rejected counts a refused player command
func (s *Simulation) Rejected(cmd policy.Command) {
	s.statRejects.Add(1)
	s.emit(EventBlocked)
}
