package policy

import (
	"context"
	"fmt"

	"github.com/lixenwraith/trainers/agent"
	"github.com/lixenwraith/trainers/parameter"
	"github.com/lixenwraith/trainers/terrain"
)

// Gates sit on the border, so the interior check already keeps the player off them
var playerTerrain = terrain.NewTileSet(
	terrain.TilePath, terrain.TileCenter, terrain.TileMart,
	terrain.TileShortGrass, terrain.TileTallGrass,
)

// BuildingName returns the display name of a landmark tile
func BuildingName(t terrain.Tile) string {
	switch t {
	case terrain.TileCenter:
		return "Pokemon Center"
	case terrain.TileMart:
		return "Pokemart"
	}
	return t.String()
}

type verdict uint8

const (
	verdictRejected verdict = iota
	verdictAccepted
	verdictFree // Handled without ending the turn
)

// stepPlayer reads commands until one is accepted
// Roster browsing and refused commands do not end the turn
func stepPlayer(ctx context.Context, env *Env, a *agent.Agent) (Outcome, error) {
	var out Outcome
	for {
		cmd, err := env.Input.Next(ctx)
		if err != nil {
			return out, err
		}

		v, err := applyPlayer(ctx, env, a, cmd, &out)
		if err != nil {
			return out, err
		}
		switch v {
		case verdictAccepted:
			out.Action = cmd
			return out, nil
		case verdictRejected:
			out.Rejected++
			if env.Hooks != nil {
				env.Hooks.Rejected(cmd)
			}
		}
	}
}

func applyPlayer(ctx context.Context, env *Env, a *agent.Agent, cmd Command, out *Outcome) (verdict, error) {
	switch cmd {
	case CmdQuit:
		out.Quit = true
		return verdictAccepted, nil

	case CmdPass:
		return verdictAccepted, nil

	case CmdOpenRoster:
		if env.Hooks == nil {
			return verdictRejected, nil
		}
		return verdictFree, env.Hooks.OpenRoster(ctx)

	case CmdEnterBuilding:
		if a.InBuilding || !a.Placeholder.IsLandmark() {
			return verdictRejected, nil
		}
		a.InBuilding = true
		notify(env, fmt.Sprintf("Entering %s..", BuildingName(a.Placeholder)))
		return verdictAccepted, nil

	case CmdExitBuilding:
		if !a.InBuilding {
			return verdictRejected, nil
		}
		a.InBuilding = false
		notify(env, fmt.Sprintf("Exiting %s..", BuildingName(a.Placeholder)))
		return verdictAccepted, nil
	}

	dir, ok := cmd.Direction()
	if !ok || a.InBuilding {
		return verdictRejected, nil
	}
	dest := a.Pos.Add(dir)
	if !env.Grid.IsInterior(dest) {
		return verdictRejected, nil
	}
	tile := env.Grid.At(dest)
	if !playerTerrain.Has(tile) {
		return verdictRejected, nil
	}

	cost := parameter.PlayerStepCost
	if tile == terrain.TileTallGrass {
		cost = parameter.PlayerTallStepCost
	}
	a.Relocate(env.Grid, dest, cost)
	out.Moved = true
	return verdictAccepted, nil
}

func notify(env *Env, msg string) {
	if env.Hooks != nil {
		env.Hooks.Notify(msg)
	}
}
