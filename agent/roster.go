package agent

import (
	"fmt"
	"strings"
)

// RosterEntry describes one NPC relative to the player
// DX and DY are player minus trainer, so negative DX means the trainer is east
type RosterEntry struct {
	Index int
	Role  Role
	DX    int
	DY    int
}

// Roster lists every NPC relative to the player in ID order
func Roster(t *Table) []RosterEntry {
	player := t.Player()
	out := make([]RosterEntry, 0, t.Len()-1)
	for _, a := range t.agents[1:] {
		out = append(out, RosterEntry{
			Index: a.ID,
			Role:  a.Role,
			DX:    player.Pos.X - a.Pos.X,
			DY:    player.Pos.Y - a.Pos.Y,
		})
	}
	return out
}

func (e RosterEntry) String() string {
	dirX, dirY := "", ""
	switch {
	case e.DX < 0:
		dirX = "east"
	case e.DX > 0:
		dirX = "west"
	}
	switch {
	case e.DY < 0:
		dirY = "south"
	case e.DY > 0:
		dirY = "north"
	}
	s := fmt.Sprintf("Trainer %d:  Type: %c, x: %d %s, y: %d %s",
		e.Index, e.Role.Glyph(), abs(e.DX), dirX, abs(e.DY), dirY)
	return strings.TrimRight(s, " ")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
