package terrain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/trainers/parameter"
)

const (
	Height = parameter.MapHeight
	Width  = parameter.MapWidth
)

// Side identifies a map edge, indexes Grid.Gates
type Side uint8

const (
	South Side = iota
	East
	North
	West
)

// Sides lists all edges in gate index order
var Sides = [4]Side{South, East, North, West}

var sideNames = [4]string{"south", "east", "north", "west"}

func (s Side) String() string {
	if int(s) >= len(sideNames) {
		return "unknown"
	}
	return sideNames[s]
}

// Opposite returns the facing edge
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Gate is a single-cell opening in a border edge
type Gate struct {
	Side Side
	Pos  Point
	Open bool // False once sealed at a world edge
}

// Grid is one generated map
type Grid struct {
	Tiles [Height][Width]Tile
	Gates [4]Gate
}

var ErrGridInvariant = errors.New("grid invariant violated")

// NewGrid returns a grid filled with TileBlank
func NewGrid() *Grid {
	return &Grid{}
}

// Clone returns a deep copy
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// InBounds reports whether p lies on the grid
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// IsBorder reports whether p lies on the outer ring
func (g *Grid) IsBorder(p Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == Width-1 || p.Y == Height-1
}

// IsInterior reports whether p is in bounds and not on the border
func (g *Grid) IsInterior(p Point) bool {
	return p.X > 0 && p.X < Width-1 && p.Y > 0 && p.Y < Height-1
}

// At returns the tile at p, TileBorder when out of bounds
func (g *Grid) At(p Point) Tile {
	if !g.InBounds(p) {
		return TileBorder
	}
	return g.Tiles[p.Y][p.X]
}

// Set writes t at p, ignoring out-of-bounds writes
func (g *Grid) Set(p Point, t Tile) {
	if !g.InBounds(p) {
		return
	}
	g.Tiles[p.Y][p.X] = t
}

// Gate returns the gate on side s
func (g *Grid) Gate(s Side) Gate {
	return g.Gates[s]
}

// Count returns how many cells hold t
func (g *Grid) Count(t Tile) int {
	n := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if g.Tiles[y][x] == t {
				n++
			}
		}
	}
	return n
}

// Validate checks the border ring and interior classification
// Border cells are TileBorder or an open gate cell; the interior holds neither border nor blank
func (g *Grid) Validate() error {
	gateAt := make(map[Point]bool, 4)
	for _, gate := range g.Gates {
		if gate.Open {
			gateAt[gate.Pos] = true
		}
	}

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			p := Point{x, y}
			t := g.Tiles[y][x]
			if g.IsBorder(p) {
				switch {
				case t == TileBorder:
				case t == TileGate && gateAt[p]:
				default:
					return fmt.Errorf("%w: border cell (%d,%d) is %s", ErrGridInvariant, x, y, t)
				}
				continue
			}
			if t == TileBorder || t == TileBlank || t == TileGate {
				return fmt.Errorf("%w: interior cell (%d,%d) is %s", ErrGridInvariant, x, y, t)
			}
		}
	}
	return nil
}

// String renders the grid as glyph rows
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(Height * (Width + 1))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			b.WriteRune(g.Tiles[y][x].Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
