package parameter

// Trainer count limits
const (
	DefaultTrainers = 10
	MinTrainers     = 1
	MaxTrainers     = 50
)

// Player movement costs
const (
	PlayerStepCost     = 10
	PlayerTallStepCost = 20
)

// Placement
const (
	// MaxPlacementAttempts bounds random placement per agent
	MaxPlacementAttempts = 10000
)
