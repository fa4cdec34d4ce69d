package navigation

import (
	"github.com/lixenwraith/trainers/parameter"
	"github.com/lixenwraith/trainers/terrain"
)

// Profile weights terrain for one seeker kind
// Tiles absent from the weight table cost nothing to cross
type Profile struct {
	Name     string
	weights  [terrain.TileCount]int
	Passable terrain.TileSet // Tiles a seeker of this kind may step onto
}

// Weight returns the crossing weight of t
func (p *Profile) Weight(t terrain.Tile) int {
	if t >= terrain.TileCount {
		return 0
	}
	return p.weights[t]
}

func baseProfile(name string) Profile {
	p := Profile{Name: name}
	p.weights[terrain.TilePath] = parameter.WeightPath
	p.weights[terrain.TileGate] = parameter.WeightPath
	p.weights[terrain.TileShortGrass] = parameter.WeightShort
	p.weights[terrain.TileCenter] = parameter.WeightBuilding
	p.weights[terrain.TileMart] = parameter.WeightBuilding
	return p
}

// HikerProfile crosses mountains
func HikerProfile() Profile {
	p := baseProfile("hiker")
	p.weights[terrain.TileTallGrass] = parameter.WeightHikerTall
	p.weights[terrain.TileMountain] = parameter.WeightHikerMountain
	p.Passable = terrain.NewTileSet(
		terrain.TilePath, terrain.TileShortGrass, terrain.TileTallGrass,
		terrain.TileMountain, terrain.TileCenter, terrain.TileMart,
	)
	return p
}

// RivalProfile keeps off mountains
func RivalProfile() Profile {
	p := baseProfile("rival")
	p.weights[terrain.TileTallGrass] = parameter.WeightRivalTall
	p.weights[terrain.TileMountain] = parameter.WeightRivalMountain
	p.Passable = terrain.NewTileSet(
		terrain.TilePath, terrain.TileShortGrass, terrain.TileTallGrass,
		terrain.TileCenter, terrain.TileMart,
	)
	return p
}
