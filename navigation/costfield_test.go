package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/trainers/parameter"
	"github.com/lixenwraith/trainers/terrain"
)

// uniformGrid returns a bordered grid whose interior is all fill
func uniformGrid(fill terrain.Tile) *terrain.Grid {
	g := terrain.NewGrid()
	for y := 0; y < terrain.Height; y++ {
		for x := 0; x < terrain.Width; x++ {
			p := terrain.Point{X: x, Y: y}
			if g.IsBorder(p) {
				g.Set(p, terrain.TileBorder)
			} else {
				g.Set(p, fill)
			}
		}
	}
	return g
}

func TestSweepSentinelExceedsReachable(t *testing.T) {
	hiker, rival := HikerProfile(), RivalProfile()
	for seed := int64(1); seed <= 20; seed++ {
		g, err := terrain.Generate(terrain.Config{Seed: seed})
		require.NoError(t, err)

		ref := terrain.Point{X: g.Gates[terrain.West].Pos.X + 1, Y: g.Gates[terrain.West].Pos.Y}
		for _, p := range []*Profile{&hiker, &rival} {
			f := Builder{Mode: ModeSweep}.Build(g, ref, p)
			assert.Less(t, f.Max(), f.Sentinel, "seed %d %s", seed, p.Name)
			assert.LessOrEqual(t, f.Max(), parameter.CostFieldVisited)
			assert.Zero(t, f.At(ref))

			for y := 1; y < terrain.Height-1; y++ {
				for x := 1; x < terrain.Width-1; x++ {
					v := f.Values[y][x]
					assert.Zero(t, v%5, "seed %d (%d,%d)=%d", seed, x, y, v)
				}
			}
		}
	}
}

func TestSweepBorderIsSentinel(t *testing.T) {
	hiker := HikerProfile()
	f := Builder{}.Build(uniformGrid(terrain.TileShortGrass), terrain.Point{X: 40, Y: 10}, &hiker)

	for x := 0; x < terrain.Width; x++ {
		assert.Equal(t, parameter.CostFieldBorder, f.Values[0][x])
		assert.Equal(t, parameter.CostFieldBorder, f.Values[terrain.Height-1][x])
	}
	for y := 0; y < terrain.Height; y++ {
		assert.Equal(t, parameter.CostFieldBorder, f.Values[y][0])
		assert.Equal(t, parameter.CostFieldBorder, f.Values[y][terrain.Width-1])
	}
	assert.Equal(t, parameter.CostFieldBorder, f.At(terrain.Point{X: -3, Y: 2}))
}

func TestSweepValues(t *testing.T) {
	hiker := HikerProfile()
	f := Builder{Mode: ModeSweep}.Build(uniformGrid(terrain.TileShortGrass), terrain.Point{X: 40, Y: 10}, &hiker)

	tests := []struct {
		name string
		p    terrain.Point
		want int
	}{
		{"north ray", terrain.Point{X: 40, Y: 9}, 20},
		{"north inner", terrain.Point{X: 39, Y: 9}, 30},
		{"north second row", terrain.Point{X: 40, Y: 8}, 30},
		{"wraps modulo", terrain.Point{X: 30, Y: 9}, 20},
		{"east ray", terrain.Point{X: 41, Y: 10}, 20},
		{"east inner", terrain.Point{X: 41, Y: 9}, 30},
		{"west ray", terrain.Point{X: 39, Y: 10}, 20},
		{"south ray", terrain.Point{X: 40, Y: 11}, 20},
		{"south inner", terrain.Point{X: 41, Y: 11}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.At(tt.p))
		})
	}
}

func TestSweepProfilesDiffer(t *testing.T) {
	hiker, rival := HikerProfile(), RivalProfile()
	g := uniformGrid(terrain.TileTallGrass)
	ref := terrain.Point{X: 40, Y: 10}

	h := Builder{}.Build(g, ref, &hiker)
	r := Builder{}.Build(g, ref, &rival)

	// Tall grass: 15 per cell for hikers, 20 for rivals
	assert.Equal(t, 30, h.At(terrain.Point{X: 40, Y: 9}))
	assert.Equal(t, 40, r.At(terrain.Point{X: 40, Y: 9}))
}

func TestMarkVisited(t *testing.T) {
	hiker := HikerProfile()
	g := uniformGrid(terrain.TileShortGrass)
	ref := terrain.Point{X: 40, Y: 10}

	f := Builder{Mode: ModeSweep}.Build(g, ref, &hiker)
	f.MarkVisited(terrain.Point{X: 12, Y: 4})
	assert.Equal(t, parameter.CostFieldVisited, f.At(terrain.Point{X: 12, Y: 4}))

	f.MarkVisited(terrain.Point{X: 0, Y: 4})
	assert.Equal(t, parameter.CostFieldBorder, f.At(terrain.Point{X: 0, Y: 4}))

	d := Builder{Mode: ModeDijkstra}.Build(g, ref, &hiker)
	before := d.At(terrain.Point{X: 12, Y: 4})
	d.MarkVisited(terrain.Point{X: 12, Y: 4})
	assert.Equal(t, before, d.At(terrain.Point{X: 12, Y: 4}))
}

func TestDijkstraDistances(t *testing.T) {
	hiker := HikerProfile()
	g := uniformGrid(terrain.TileShortGrass)
	ref := terrain.Point{X: 40, Y: 10}

	f := Builder{Mode: ModeDijkstra}.Build(g, ref, &hiker)
	assert.Zero(t, f.At(ref))
	assert.Equal(t, 50, f.At(terrain.Point{X: 45, Y: 10}))
	assert.Equal(t, 50, f.At(terrain.Point{X: 45, Y: 5}))
	assert.Equal(t, 50, f.At(terrain.Point{X: 40, Y: 5}))
	assert.Equal(t, parameter.CostFieldUnreachable, f.At(terrain.Point{X: 0, Y: 5}))
}

func TestDijkstraRespectsProfile(t *testing.T) {
	hiker, rival := HikerProfile(), RivalProfile()
	g := uniformGrid(terrain.TileShortGrass)
	// Mountain wall splitting the map at column 50
	for y := 1; y < terrain.Height-1; y++ {
		g.Set(terrain.Point{X: 50, Y: y}, terrain.TileMountain)
	}
	ref := terrain.Point{X: 40, Y: 10}
	far := terrain.Point{X: 60, Y: 10}

	h := Builder{Mode: ModeDijkstra}.Build(g, ref, &hiker)
	r := Builder{Mode: ModeDijkstra}.Build(g, ref, &rival)

	assert.Less(t, h.At(far), h.Sentinel)
	assert.Equal(t, r.Sentinel, r.At(far))
	assert.Less(t, r.At(terrain.Point{X: 49, Y: 10}), r.Sentinel)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Dijkstra")
	require.NoError(t, err)
	assert.Equal(t, ModeDijkstra, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeSweep, m)

	_, err = ParseMode("astar")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestFieldCacheRecomputesOnMapChange(t *testing.T) {
	c := NewFieldCache(ModeSweep)
	g := uniformGrid(terrain.TileShortGrass)
	ref := terrain.Point{X: 40, Y: 10}

	first, recomputed := c.Update("200,200", g, ref)
	require.True(t, recomputed)
	require.NotNil(t, first.Hiker)
	require.NotNil(t, first.Rival)

	second, recomputed := c.Update("200,200", g, ref)
	assert.False(t, recomputed)
	assert.Same(t, first.Hiker, second.Hiker)

	_, recomputed = c.Update("199,200", g, ref)
	assert.True(t, recomputed)

	c.MarkDirty()
	_, recomputed = c.Update("199,200", g, ref)
	assert.True(t, recomputed)
}
