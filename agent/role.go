package agent

import "github.com/lixenwraith/trainers/terrain"

// Role selects an agent's movement policy
type Role uint8

const (
	RolePlayer Role = iota
	RoleHiker
	RoleRival
	RolePacer
	RoleWanderer
	RoleExplorer
	RoleSentry

	RoleCount
)

// NPCRoles lists the autonomous roles in assignment order
var NPCRoles = [...]Role{RoleHiker, RoleRival, RolePacer, RoleWanderer, RoleExplorer, RoleSentry}

// Tile returns the occupant overlay for the role
func (r Role) Tile() terrain.Tile {
	if r >= RoleCount {
		return terrain.TileBlank
	}
	return terrain.TilePlayer + terrain.Tile(r)
}

// Glyph returns the display rune
func (r Role) Glyph() rune {
	return r.Tile().Glyph()
}

func (r Role) String() string {
	if r >= RoleCount {
		return "unknown"
	}
	return r.Tile().String()
}

// IsSeeker reports whether the role follows a cost field toward the player
func (r Role) IsSeeker() bool {
	return r == RoleHiker || r == RoleRival
}

// UsesHeading reports whether the role walks a persistent heading
func (r Role) UsesHeading() bool {
	return r == RolePacer || r == RoleWanderer || r == RoleExplorer
}
