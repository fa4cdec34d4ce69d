package terrain

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lixenwraith/trainers/parameter"
)

var ErrLandmarkPlacement = errors.New("no free landmark footprint")

// footprint returns the 2x2 block beside a gate mouth
// The block sits one and two cells inward from the border and one and two cells to one side of the gate
func footprint(gate Gate, side int) [4]Point {
	// lateral is +1/-1 along the edge, inward points into the map
	lateral := 1
	if side == 0 {
		lateral = -1
	}

	var along, inward Point
	switch gate.Side {
	case South:
		along, inward = Point{lateral, 0}, Point{0, -1}
	case North:
		along, inward = Point{lateral, 0}, Point{0, 1}
	case East:
		along, inward = Point{0, -lateral}, Point{-1, 0}
	case West:
		along, inward = Point{0, -lateral}, Point{1, 0}
	}

	var fp [4]Point
	k := 0
	for i := 1; i <= 2; i++ {
		for j := 1; j <= 2; j++ {
			fp[k] = Point{
				gate.Pos.X + inward.X*i + along.X*j,
				gate.Pos.Y + inward.Y*i + along.Y*j,
			}
			k++
		}
	}
	return fp
}

func footprintFree(g *Grid, fp [4]Point) bool {
	for _, p := range fp {
		if !g.IsInterior(p) {
			return false
		}
		t := g.At(p)
		if t.IsLandmark() || t == TileGate {
			return false
		}
	}
	return true
}

// placeLandmark stamps a 2x2 building next to a random gate
// Random draws are bounded; afterwards candidates are scanned in gate/side order
func placeLandmark(g *Grid, building Tile, rng *rand.Rand) error {
	for attempt := 0; attempt < parameter.MaxLandmarkAttempts; attempt++ {
		gate := g.Gates[rng.Intn(len(g.Gates))]
		fp := footprint(gate, rng.Intn(2))
		if footprintFree(g, fp) {
			stamp(g, fp, building)
			return nil
		}
	}

	for _, gate := range g.Gates {
		for side := 0; side < 2; side++ {
			fp := footprint(gate, side)
			if footprintFree(g, fp) {
				stamp(g, fp, building)
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrLandmarkPlacement, building)
}

func stamp(g *Grid, fp [4]Point, t Tile) {
	for _, p := range fp {
		g.Set(p, t)
	}
}
