package agent

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lixenwraith/trainers/parameter"
)

var ErrTrainerCount = errors.New("trainer count out of range")

// AssignRoles returns roles for the player plus trainers NPCs
// Index 1 is a hiker or rival at random and index 2 the other, so both seekers appear when room allows
func AssignRoles(trainers int, rng *rand.Rand) ([]Role, error) {
	if trainers < parameter.MinTrainers || trainers > parameter.MaxTrainers {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrTrainerCount, trainers, parameter.MinTrainers, parameter.MaxTrainers)
	}

	roles := make([]Role, trainers+1)
	roles[0] = RolePlayer

	first := RoleHiker
	if rng.Intn(2) == 1 {
		first = RoleRival
	}
	roles[1] = first

	for i := 2; i <= trainers; i++ {
		if i == 2 {
			roles[i] = RoleHiker + RoleRival - first
			continue
		}
		roles[i] = NPCRoles[rng.Intn(len(NPCRoles))]
	}
	return roles, nil
}
