package terrain

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/trainers/parameter"
)

type Config struct {
	// Rand is the shared source; when nil a source is built from Seed
	Rand *rand.Rand
	Seed int64 // Optional (0 = Random)

	// GrowthPasses bounds the re-growth scans (0 = parameter.GrowthPasses)
	GrowthPasses int

	// Neighbors holds already generated maps per side; the facing gate offset is inherited
	Neighbors [4]*Grid

	// Sealed marks world edges; gates on those sides are closed back into border
	Sealed [4]bool
}

// Generate builds a fully classified map
func Generate(cfg Config) (*Grid, error) {
	// 1. RNG Setup
	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	passes := cfg.GrowthPasses
	if passes <= 0 {
		passes = parameter.GrowthPasses
	}
	// Growth cannot paint more cells than the grid holds
	if passes > Height*Width {
		passes = Height * Width
	}

	g := NewGrid()

	// 2. Border ring and gates
	stampBorders(g, rng, cfg.Neighbors)

	// 3. Biome regions
	seeds := plantSeeds(g, rng)
	growRegions(g, seeds, passes, rng)

	// 4. Default fill and obstacle noise
	fillDefault(g, rng)

	// 5. Connector paths
	drawPaths(g, rng)

	// 6. Landmarks
	if err := placeLandmark(g, TileMart, rng); err != nil {
		return nil, err
	}
	if err := placeLandmark(g, TileCenter, rng); err != nil {
		return nil, err
	}

	// 7. World edge sealing
	for _, s := range Sides {
		if cfg.Sealed[s] {
			seal(g, s)
		}
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return g, nil
}

func stampBorders(g *Grid, rng *rand.Rand, neighbors [4]*Grid) {
	for x := 0; x < Width; x++ {
		g.Tiles[0][x] = TileBorder
		g.Tiles[Height-1][x] = TileBorder
	}
	for y := 0; y < Height; y++ {
		g.Tiles[y][0] = TileBorder
		g.Tiles[y][Width-1] = TileBorder
	}

	// All four offsets are drawn before inheritance so the RNG stream does not depend on neighbors
	north := rng.Intn(Width-2*parameter.GateMarginX) + parameter.GateMarginX
	south := rng.Intn(Width-2*parameter.GateMarginX) + parameter.GateMarginX
	east := rng.Intn(parameter.GateRowSpan) + parameter.GateRowMin
	west := rng.Intn(parameter.GateRowSpan) + parameter.GateRowMin

	if n := neighbors[North]; n != nil {
		north = n.Gates[South].Pos.X
	}
	if n := neighbors[South]; n != nil {
		south = n.Gates[North].Pos.X
	}
	if n := neighbors[East]; n != nil {
		east = n.Gates[West].Pos.Y
	}
	if n := neighbors[West]; n != nil {
		west = n.Gates[East].Pos.Y
	}

	g.Gates[South] = Gate{Side: South, Pos: Point{south, Height - 1}, Open: true}
	g.Gates[East] = Gate{Side: East, Pos: Point{Width - 1, east}, Open: true}
	g.Gates[North] = Gate{Side: North, Pos: Point{north, 0}, Open: true}
	g.Gates[West] = Gate{Side: West, Pos: Point{0, west}, Open: true}

	for _, gate := range g.Gates {
		g.Set(gate.Pos, TileGate)
	}
}

func fillDefault(g *Grid, rng *rand.Rand) {
	fill := TileShortGrass
	if rng.Intn(2) == 1 {
		fill = TileTallGrass
	}

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			switch t := g.Tiles[y][x]; {
			case t == TileBlank:
				if rollTree(rng) {
					g.Tiles[y][x] = TileTree
				} else {
					g.Tiles[y][x] = fill
				}
			case t.IsGrass():
				if rollTree(rng) {
					g.Tiles[y][x] = TileTree
				}
			}
		}
	}
}

// rollTree draws 1..100 and hits on multiples of 100/TreeChancePercent
func rollTree(rng *rand.Rand) bool {
	n := rng.Intn(100) + 1
	return n%(100/parameter.TreeChancePercent) == 0
}

func seal(g *Grid, s Side) {
	gate := &g.Gates[s]
	g.Set(gate.Pos, TileBorder)
	gate.Open = false
}
