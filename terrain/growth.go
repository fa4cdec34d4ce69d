package terrain

import (
	"math/rand"

	"github.com/lixenwraith/trainers/parameter"
)

type seed struct {
	pos   Point
	biome Tile
}

// plantSeeds places one seed per 3x2 lattice point with jitter
// Each biome tag is drawn from a shrinking pool; the chosen tag is swapped to the tail and excluded
func plantSeeds(g *Grid, rng *rand.Rand) []seed {
	pool := []Tile{TileTallGrass, TileTallGrass, TileShortGrass, TileShortGrass, TileWater, TileMountain}

	spacingY := Height / 3
	spacingX := Width / 4

	seeds := make([]seed, 0, parameter.SeedCount)
	for y := spacingY; y < Height-spacingY/2 && len(seeds) < parameter.SeedCount; y += spacingY {
		for x := spacingX; x < Width && len(seeds) < parameter.SeedCount; x += spacingX {
			jx := rng.Intn(2*parameter.SeedJitter+1) + x - parameter.SeedJitter
			jy := rng.Intn(2*parameter.SeedJitter+1) + y - parameter.SeedJitter

			n := len(pool) - len(seeds)
			i := rng.Intn(n)
			biome := pool[i]
			pool[i], pool[n-1] = pool[n-1], pool[i]

			p := Point{jx, jy}
			g.Set(p, biome)
			seeds = append(seeds, seed{pos: p, biome: biome})
		}
	}
	return seeds
}

// growRegions expands every seed once, then rescans the interior so regions keep growing
// from any cell of their biome. Stops after a pass that paints nothing or after maxPasses
// Reports whether growth settled before the bound
func growRegions(g *Grid, seeds []seed, maxPasses int, rng *rand.Rand) bool {
	expand(g, seeds, rng)

	for pass := 0; pass < maxPasses; pass++ {
		if growPass(g, seeds, rng) == 0 {
			return true
		}
	}
	return false
}

func growPass(g *Grid, seeds []seed, rng *rand.Rand) int {
	painted := 0
	for y := 1; y < Height-1; y++ {
		for x := 1; x < Width-1; x++ {
			for k := range seeds {
				if g.Tiles[y][x] == seeds[k].biome {
					seeds[k].pos = Point{x, y}
					painted += expand(g, seeds, rng)
				}
			}
		}
	}
	return painted
}

// expand tries up to 8 random neighbors of each seed frontier
// Blank cells are painted, own-biome cells are skipped, any other tile halts that frontier
func expand(g *Grid, seeds []seed, rng *rand.Rand) int {
	painted := 0
	for k := range seeds {
	tries:
		for i := 0; i < len(Neighbors); i++ {
			n := seeds[k].pos.Add(Neighbors[rng.Intn(len(Neighbors))])
			if !g.InBounds(n) {
				continue
			}
			switch g.At(n) {
			case TileBlank:
				g.Set(n, seeds[k].biome)
				painted++
			case seeds[k].biome:
				continue
			default:
				break tries
			}
		}
	}
	return painted
}
