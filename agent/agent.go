package agent

import "github.com/lixenwraith/trainers/terrain"

// Agent is the mutable state of one trainer
// Values flow through the scheduler as snapshots; Table holds the authoritative copy
type Agent struct {
	ID          int
	Role        Role
	Pos         terrain.Point
	Cost        int           // Accumulated movement cost, never decreases
	Heading     terrain.Point // Zero until a heading role first moves
	Placeholder terrain.Tile  // Terrain under the agent, restored on leave
	InBuilding  bool          // Player only
}

// Relocate moves the agent to dest and charges cost
// The destination terrain is saved, the occupant written and the origin restored in one step
func (a *Agent) Relocate(g *terrain.Grid, dest terrain.Point, cost int) {
	saved := g.At(dest)
	g.Set(dest, a.Role.Tile())
	g.Set(a.Pos, a.Placeholder)
	a.Placeholder = saved
	a.Pos = dest
	a.Cost += cost
}

// Charge adds cost without moving
func (a *Agent) Charge(cost int) {
	a.Cost += cost
}
