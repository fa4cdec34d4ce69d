package parameter

// Navigation - Cost Field
const (
	// CostFieldModulus wraps sweep costs into [0, 100)
	CostFieldModulus = 100

	// CostFieldBorder marks border cells, above any wrapped cost
	CostFieldBorder = 99

	// CostFieldVisited is stamped by seekers on the cell they leave
	CostFieldVisited = 95

	// CostFieldUnreachable marks blocked cells in Dijkstra mode
	CostFieldUnreachable = 1<<30 - 1
)

// Terrain weights shared by every profile
const (
	WeightPath     = 10
	WeightShort    = 10
	WeightBuilding = 50
)

// Hiker profile
const (
	WeightHikerTall     = 15
	WeightHikerMountain = 15
)

// Rival profile
const (
	WeightRivalTall     = 20
	WeightRivalMountain = 0
)
