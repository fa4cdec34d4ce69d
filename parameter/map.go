package parameter

// Map dimensions
const (
	// MapHeight is the number of rows in a single map, border included
	MapHeight = 21

	// MapWidth is the number of columns in a single map, border included
	MapWidth = 80

	// WorldSize is the side of the square world of maps
	WorldSize = 401
)

// Gate placement
const (
	// GateMarginX keeps north/south gates away from the corners
	GateMarginX = 10

	// GateRowMin and GateRowSpan bound east/west gate rows to [5, 14]
	GateRowMin  = 5
	GateRowSpan = MapHeight / 2
)

// Region growth
const (
	// SeedCount is the number of biome seeds (3 columns x 2 rows)
	SeedCount = 6

	// SeedJitter is the max offset of a seed from its lattice point
	SeedJitter = 2

	// GrowthPasses bounds the re-growth scans; growth normally ends earlier on a pass that paints nothing
	GrowthPasses = MapHeight * MapWidth

	// TreeChancePercent is the chance a grass cell becomes a tree
	TreeChancePercent = 5
)

// Connector paths
const (
	// PathRunMinX is the minimum length of the west gate leg
	PathRunMinX = 20

	// PathRunMinY is the minimum length of the north gate leg
	PathRunMinY = 5
)

// Landmarks
const (
	// MaxLandmarkAttempts bounds the random search before falling back to an ordered scan
	MaxLandmarkAttempts = 64
)
