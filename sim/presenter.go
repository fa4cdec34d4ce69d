package sim

import (
	"github.com/lixenwraith/trainers/agent"
	"github.com/lixenwraith/trainers/terrain"
	"github.com/lixenwraith/trainers/world"
)

// View is the read-only state handed to a presenter
type View struct {
	Grid    *terrain.Grid
	Player  agent.Agent
	Coord   world.Coord
	Session string
	Ticks   int64
	Rounds  int64
}

// Presenter renders simulation state
// Calls happen on the loop goroutine and must not block on input
type Presenter interface {
	DrawMap(v View)
	DrawRoster(entries []agent.RosterEntry, cursor int)
	Notify(msg string)
}

// Event marks a player-visible moment, used for audio cues
type Event uint8

const (
	EventBlocked Event = iota // Player command refused
	EventEnter
	EventExit
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventBlocked:
		return "blocked"
	case EventEnter:
		return "enter"
	case EventExit:
		return "exit"
	case EventQuit:
		return "quit"
	}
	return "unknown"
}

// Listener receives events; it must return quickly
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(e Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }
