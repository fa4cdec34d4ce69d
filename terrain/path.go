package terrain

import (
	"math/rand"

	"github.com/lixenwraith/trainers/parameter"
)

// drawPaths lays the west-east and north-south connectors as L-shaped polylines
// Paths overwrite interior terrain only; gate cells keep TileGate
func drawPaths(g *Grid, rng *rand.Rand) {
	west, east := g.Gates[West].Pos, g.Gates[East].Pos
	north, south := g.Gates[North].Pos, g.Gates[South].Pos

	// West -> East: horizontal leg from the west gate, vertical to the east row, horizontal into the east gate
	runX := rng.Intn(Width)/2 + parameter.PathRunMinX
	turnX := runX - 1
	hline(g, west.Y, 0, turnX)
	vline(g, turnX, west.Y, east.Y)
	hline(g, east.Y, turnX, Width-1)

	// North -> South: vertical leg from the north gate, horizontal to the south column, vertical into the south gate
	runY := rng.Intn(Height)/2 + parameter.PathRunMinY
	turnY := runY - 1
	vline(g, north.X, 0, turnY)
	hline(g, turnY, north.X, south.X)
	vline(g, south.X, turnY, Height-1)
}

func hline(g *Grid, y, x0, x1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		paintPath(g, Point{x, y})
	}
}

func vline(g *Grid, x, y0, y1 int) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		paintPath(g, Point{x, y})
	}
}

func paintPath(g *Grid, p Point) {
	if g.IsInterior(p) {
		g.Set(p, TilePath)
	}
}
