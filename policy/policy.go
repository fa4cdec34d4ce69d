package policy

import (
	"context"
	"math/rand"

	"github.com/lixenwraith/trainers/agent"
	"github.com/lixenwraith/trainers/navigation"
	"github.com/lixenwraith/trainers/parameter"
	"github.com/lixenwraith/trainers/terrain"
)

// PlayerHooks connects the player policy to the presentation side
type PlayerHooks interface {
	// OpenRoster runs the roster view to completion; the turn is not consumed
	OpenRoster(ctx context.Context) error
	Notify(msg string)
	Rejected(cmd Command)
}

// Env is everything a policy may read or mutate during one step
type Env struct {
	Grid   *terrain.Grid
	Fields navigation.Fields
	Hiker  *navigation.Profile
	Rival  *navigation.Profile
	Rand   *rand.Rand
	Input  CommandSource // Player only
	Hooks  PlayerHooks   // Optional
}

// Outcome summarizes one step
type Outcome struct {
	Moved    bool    // Position changed
	Blocked  bool    // NPC stayed because its move was not allowed
	Rejected int     // Player commands refused before one was accepted
	Action   Command // Accepted player command
	Quit     bool
}

// Step runs the policy of a's role, mutating a and the grid in place
func Step(ctx context.Context, env *Env, a *agent.Agent) (Outcome, error) {
	if a.Role.UsesHeading() && a.Heading.IsZero() {
		a.Heading = randomHeading(env.Rand)
	}

	switch a.Role {
	case agent.RolePlayer:
		return stepPlayer(ctx, env, a)
	case agent.RoleHiker:
		return stepSeeker(env, a, env.Fields.Hiker, env.Hiker), nil
	case agent.RoleRival:
		return stepSeeker(env, a, env.Fields.Rival, env.Rival), nil
	case agent.RolePacer:
		return stepPacer(env, a), nil
	case agent.RoleWanderer:
		return stepWanderer(env, a), nil
	case agent.RoleExplorer:
		return stepExplorer(env, a), nil
	}
	// Sentries hold position
	return Outcome{}, nil
}

var neighborOffsets = terrain.Neighbors

func randomHeading(rng *rand.Rand) terrain.Point {
	return neighborOffsets[rng.Intn(len(neighborOffsets))]
}

// fieldCost converts a field value into a scheduler charge
// Sentinel values from unreachable cells are charged as border cost so costs stay bounded
func fieldCost(f *navigation.CostField, v int) int {
	if v >= f.Sentinel {
		return parameter.CostFieldBorder
	}
	return v
}
