package agent

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAgent   = errors.New("unknown agent")
	ErrCostRegression = errors.New("agent cost decreased")
)

// Table is the authoritative agent list indexed by ID; index 0 is the player
type Table struct {
	agents []Agent
}

// NewTable creates one agent per role with IDs matching the slice index
func NewTable(roles []Role) *Table {
	t := &Table{agents: make([]Agent, len(roles))}
	for i, r := range roles {
		t.agents[i] = Agent{ID: i, Role: r}
	}
	return t
}

// Len returns the agent count including the player
func (t *Table) Len() int {
	return len(t.agents)
}

// Get returns a snapshot of agent id
func (t *Table) Get(id int) (Agent, bool) {
	if id < 0 || id >= len(t.agents) {
		return Agent{}, false
	}
	return t.agents[id], true
}

// All returns snapshots of every agent in ID order
func (t *Table) All() []Agent {
	out := make([]Agent, len(t.agents))
	copy(out, t.agents)
	return out
}

// Player returns the player snapshot
func (t *Table) Player() Agent {
	return t.agents[0]
}

// Apply writes a stepped snapshot back by ID
func (t *Table) Apply(a Agent) error {
	if a.ID < 0 || a.ID >= len(t.agents) {
		return fmt.Errorf("%w: id %d", ErrUnknownAgent, a.ID)
	}
	if a.Cost < t.agents[a.ID].Cost {
		return fmt.Errorf("%w: id %d %d -> %d", ErrCostRegression, a.ID, t.agents[a.ID].Cost, a.Cost)
	}
	t.agents[a.ID] = a
	return nil
}
