package terrain

import "github.com/zyedidia/generic/mapset"

// Tile classifies a single map cell
// Occupant tiles overlay terrain while an agent stands on the cell
type Tile uint8

const (
	TileBlank Tile = iota // Unassigned, generation only
	TileBorder
	TileGate
	TilePath
	TileShortGrass
	TileTallGrass
	TileWater
	TileMountain
	TileTree
	TileCenter
	TileMart

	// Occupants
	TilePlayer
	TileHiker
	TileRival
	TilePacer
	TileWanderer
	TileExplorer
	TileSentry

	TileCount
)

var tileGlyphs = [TileCount]rune{
	TileBlank:      ' ',
	TileBorder:     '%',
	TileGate:       '#',
	TilePath:       '#',
	TileShortGrass: '.',
	TileTallGrass:  ':',
	TileWater:      '~',
	TileMountain:   '%',
	TileTree:       '^',
	TileCenter:     'C',
	TileMart:       'M',
	TilePlayer:     '@',
	TileHiker:      'h',
	TileRival:      'r',
	TilePacer:      'p',
	TileWanderer:   'w',
	TileExplorer:   'e',
	TileSentry:     's',
}

var tileNames = [TileCount]string{
	TileBlank:      "blank",
	TileBorder:     "border",
	TileGate:       "gate",
	TilePath:       "path",
	TileShortGrass: "short-grass",
	TileTallGrass:  "tall-grass",
	TileWater:      "water",
	TileMountain:   "mountain",
	TileTree:       "tree",
	TileCenter:     "center",
	TileMart:       "mart",
	TilePlayer:     "player",
	TileHiker:      "hiker",
	TileRival:      "rival",
	TilePacer:      "pacer",
	TileWanderer:   "wanderer",
	TileExplorer:   "explorer",
	TileSentry:     "sentry",
}

// Glyph returns the display rune
func (t Tile) Glyph() rune {
	if t >= TileCount {
		return '?'
	}
	return tileGlyphs[t]
}

func (t Tile) String() string {
	if t >= TileCount {
		return "unknown"
	}
	return tileNames[t]
}

// IsOccupant reports whether the tile is an agent overlay
func (t Tile) IsOccupant() bool {
	return t >= TilePlayer && t < TileCount
}

// IsLandmark reports whether the tile belongs to a building
func (t Tile) IsLandmark() bool {
	return t == TileCenter || t == TileMart
}

// IsGrass reports whether the tile is one of the two default biomes
func (t Tile) IsGrass() bool {
	return t == TileShortGrass || t == TileTallGrass
}

// TileSet is an unordered set of tiles, used for per-role allowed terrain
type TileSet = mapset.Set[Tile]

// NewTileSet builds a set from the given tiles
func NewTileSet(tiles ...Tile) TileSet {
	s := mapset.New[Tile]()
	for _, t := range tiles {
		s.Put(t)
	}
	return s
}
