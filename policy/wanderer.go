package policy

import (
	"github.com/lixenwraith/trainers/agent"
	"github.com/lixenwraith/trainers/terrain"
)

// walkerTerrain is shared by pacers and explorers
var walkerTerrain = terrain.NewTileSet(
	terrain.TilePath, terrain.TileShortGrass, terrain.TileTallGrass,
	terrain.TileCenter, terrain.TileMart,
)

// advance steps a along its heading when ok accepts the destination tile
// Movement is charged the destination's hiker field value
func advance(env *Env, a *agent.Agent, ok func(terrain.Tile) bool) bool {
	dest := a.Pos.Add(a.Heading)
	if !env.Grid.IsInterior(dest) || !ok(env.Grid.At(dest)) {
		return false
	}
	field := env.Fields.Hiker
	a.Relocate(env.Grid, dest, fieldCost(field, field.At(dest)))
	return true
}

// stepPacer walks back and forth, reversing when blocked
func stepPacer(env *Env, a *agent.Agent) Outcome {
	if advance(env, a, walkerTerrain.Has) {
		return Outcome{Moved: true}
	}
	a.Heading = a.Heading.Neg()
	return Outcome{Blocked: true}
}

// stepWanderer stays inside the biome it stands on
func stepWanderer(env *Env, a *agent.Agent) Outcome {
	home := a.Placeholder
	if advance(env, a, func(t terrain.Tile) bool { return t == home }) {
		return Outcome{Moved: true}
	}
	a.Heading = randomHeading(env.Rand)
	return Outcome{Blocked: true}
}

// stepExplorer roams any walkable terrain, turning randomly when blocked
func stepExplorer(env *Env, a *agent.Agent) Outcome {
	if advance(env, a, walkerTerrain.Has) {
		return Outcome{Moved: true}
	}
	a.Heading = randomHeading(env.Rand)
	return Outcome{Blocked: true}
}
