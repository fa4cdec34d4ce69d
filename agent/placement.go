package agent

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lixenwraith/trainers/parameter"
	"github.com/lixenwraith/trainers/terrain"
)

var ErrPlacement = errors.New("no free cell for agent")

// canStart reports whether role r may be placed on tile t
func canStart(r Role, t terrain.Tile) bool {
	switch {
	case t.IsOccupant(), t == terrain.TileBorder, t == terrain.TileGate, t == terrain.TileBlank:
		return false
	case r == RolePlayer:
		return t == terrain.TilePath
	case r == RoleHiker:
		return t != terrain.TileTree && t != terrain.TileWater
	default:
		return t != terrain.TileTree && t != terrain.TileWater && t != terrain.TileMountain
	}
}

// Place drops every agent of t onto a random interior cell its role may start on
// Each agent gets a bounded number of draws before placement fails
func Place(t *Table, g *terrain.Grid, rng *rand.Rand) error {
	for i := range t.agents {
		a := &t.agents[i]
		placed := false
		for attempt := 0; attempt < parameter.MaxPlacementAttempts; attempt++ {
			p := terrain.Point{
				X: rng.Intn(terrain.Width-2) + 1,
				Y: rng.Intn(terrain.Height-2) + 1,
			}
			tile := g.At(p)
			if !canStart(a.Role, tile) {
				continue
			}
			a.Pos = p
			a.Placeholder = tile
			a.Cost = 0
			a.Heading = terrain.Point{}
			g.Set(p, a.Role.Tile())
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("%w: agent %d (%s)", ErrPlacement, a.ID, a.Role)
		}
	}
	return nil
}
