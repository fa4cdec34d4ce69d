package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trainers/terrain"
)

// RGB color definitions for terrain and occupants
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbBorder     = tcell.NewRGBColor(120, 120, 120)
	RgbPath       = tcell.NewRGBColor(200, 170, 110)
	RgbShortGrass = tcell.NewRGBColor(90, 180, 90)
	RgbTallGrass  = tcell.NewRGBColor(40, 130, 40)
	RgbWater      = tcell.NewRGBColor(80, 140, 255)
	RgbMountain   = tcell.NewRGBColor(150, 110, 80)
	RgbTree       = tcell.NewRGBColor(20, 100, 20)
	RgbCenter     = tcell.NewRGBColor(255, 80, 80)
	RgbMart       = tcell.NewRGBColor(100, 150, 255)

	RgbPlayer = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbSeeker = tcell.NewRGBColor(255, 120, 120) // Hiker and rival
	RgbWalker = tcell.NewRGBColor(255, 165, 0)   // Pacer, wanderer, explorer
	RgbSentry = tcell.NewRGBColor(200, 200, 200)

	RgbMessage   = tcell.NewRGBColor(255, 255, 255)
	RgbStatusBar = tcell.NewRGBColor(180, 180, 180)
	RgbRosterBox = tcell.NewRGBColor(135, 206, 250) // Light sky blue
)

// Palette maps every tile to a style
type Palette [terrain.TileCount]tcell.Style

// DefaultPalette colors terrain by biome and occupants by role family
func DefaultPalette() Palette {
	base := tcell.StyleDefault.Background(RgbBackground)

	var p Palette
	for i := range p {
		p[i] = base
	}
	p[terrain.TileBorder] = base.Foreground(RgbBorder)
	p[terrain.TileGate] = base.Foreground(RgbPath).Bold(true)
	p[terrain.TilePath] = base.Foreground(RgbPath)
	p[terrain.TileShortGrass] = base.Foreground(RgbShortGrass)
	p[terrain.TileTallGrass] = base.Foreground(RgbTallGrass)
	p[terrain.TileWater] = base.Foreground(RgbWater)
	p[terrain.TileMountain] = base.Foreground(RgbMountain)
	p[terrain.TileTree] = base.Foreground(RgbTree)
	p[terrain.TileCenter] = base.Foreground(RgbCenter).Bold(true)
	p[terrain.TileMart] = base.Foreground(RgbMart).Bold(true)

	p[terrain.TilePlayer] = base.Foreground(RgbPlayer).Bold(true)
	p[terrain.TileHiker] = base.Foreground(RgbSeeker).Bold(true)
	p[terrain.TileRival] = base.Foreground(RgbSeeker).Bold(true)
	p[terrain.TilePacer] = base.Foreground(RgbWalker)
	p[terrain.TileWanderer] = base.Foreground(RgbWalker)
	p[terrain.TileExplorer] = base.Foreground(RgbWalker)
	p[terrain.TileSentry] = base.Foreground(RgbSentry)
	return p
}

// Style returns the style for t, or the background style for unknown tiles
func (p *Palette) Style(t terrain.Tile) tcell.Style {
	if t >= terrain.TileCount {
		return p[terrain.TileBlank]
	}
	return p[t]
}
