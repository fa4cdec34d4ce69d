package policy

import (
	"github.com/lixenwraith/trainers/agent"
	"github.com/lixenwraith/trainers/navigation"
)

// stepSeeker moves to the allowed neighbor with the lowest field value
// Ties go to the first neighbor in enumeration order. The vacated cell is stamped visited.
// With no allowed neighbor the seeker stays and pays the lowest value it saw
func stepSeeker(env *Env, a *agent.Agent, field *navigation.CostField, profile *navigation.Profile) Outcome {
	best := -1
	bestVal := 0
	seen := field.Sentinel

	for i, d := range neighborOffsets {
		n := a.Pos.Add(d)
		v := field.At(n)
		if v < seen {
			seen = v
		}
		if !env.Grid.IsInterior(n) || !profile.Passable.Has(env.Grid.At(n)) {
			continue
		}
		if best < 0 || v < bestVal {
			best = i
			bestVal = v
		}
	}

	if best < 0 {
		a.Charge(fieldCost(field, seen))
		return Outcome{Blocked: true}
	}

	from := a.Pos
	a.Relocate(env.Grid, a.Pos.Add(neighborOffsets[best]), fieldCost(field, bestVal))
	field.MarkVisited(from)
	return Outcome{Moved: true}
}
