package policy

import (
	"github.com/lixenwraith/trainers/terrain"
)

// Command is one discrete player input
type Command uint8

const (
	CmdNone Command = iota

	// Moves, in neighbor enumeration order
	CmdMoveNW
	CmdMoveN
	CmdMoveNE
	CmdMoveW
	CmdMoveE
	CmdMoveSW
	CmdMoveS
	CmdMoveSE

	CmdEnterBuilding
	CmdExitBuilding
	CmdOpenRoster
	CmdPass
	CmdQuit

	// Roster view only
	CmdLineUp
	CmdLineDown
	CmdCloseView

	CmdCount
)

var commandNames = [CmdCount]string{
	CmdNone:          "none",
	CmdMoveNW:        "nw",
	CmdMoveN:         "n",
	CmdMoveNE:        "ne",
	CmdMoveW:         "w",
	CmdMoveE:         "e",
	CmdMoveSW:        "sw",
	CmdMoveS:         "s",
	CmdMoveSE:        "se",
	CmdEnterBuilding: "enter",
	CmdExitBuilding:  "exit",
	CmdOpenRoster:    "roster",
	CmdPass:          "pass",
	CmdQuit:          "quit",
	CmdLineUp:        "up",
	CmdLineDown:      "down",
	CmdCloseView:     "close",
}

func (c Command) String() string {
	if c >= CmdCount {
		return "unknown"
	}
	return commandNames[c]
}

// Direction returns the step offset of a move command
func (c Command) Direction() (terrain.Point, bool) {
	if c < CmdMoveNW || c > CmdMoveSE {
		return terrain.Point{}, false
	}
	return terrain.Neighbors[c-CmdMoveNW], true
}

// keyRunes maps the keypad layout onto commands
var keyRunes = map[rune]Command{
	'7': CmdMoveNW,
	'8': CmdMoveN,
	'9': CmdMoveNE,
	'4': CmdMoveW,
	'6': CmdMoveE,
	'1': CmdMoveSW,
	'2': CmdMoveS,
	'3': CmdMoveSE,
	'>': CmdEnterBuilding,
	'<': CmdExitBuilding,
	't': CmdOpenRoster,
	' ': CmdPass,
	'Q': CmdQuit,
}

// CommandForRune returns the command bound to a typed rune
func CommandForRune(r rune) (Command, bool) {
	c, ok := keyRunes[r]
	return c, ok
}
