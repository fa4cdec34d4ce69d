package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trainers/policy"
)

// KeyTable maps terminal keys to player commands
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, escape)
	SpecialKeys map[tcell.Key]policy.Command

	// Printable rune bindings
	Runes map[rune]policy.Command
}

// DefaultKeyTable returns the keypad layout plus vi-style movement letters
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]policy.Command{
			tcell.KeyCtrlC:  policy.CmdQuit,
			tcell.KeyEscape: policy.CmdCloseView,
			tcell.KeyUp:     policy.CmdLineUp,
			tcell.KeyDown:   policy.CmdLineDown,
		},
		Runes: map[rune]policy.Command{
			'y': policy.CmdMoveNW,
			'k': policy.CmdMoveN,
			'u': policy.CmdMoveNE,
			'h': policy.CmdMoveW,
			'l': policy.CmdMoveE,
			'b': policy.CmdMoveSW,
			'j': policy.CmdMoveS,
			'n': policy.CmdMoveSE,
			'.': policy.CmdPass,
			'5': policy.CmdPass,
		},
	}

	for r := rune(0x20); r < 0x7f; r++ {
		if c, ok := policy.CommandForRune(r); ok {
			kt.Runes[r] = c
		}
	}
	return kt
}

// Lookup resolves a key press; modifier chords other than the Ctrl keys are unbound
func (kt *KeyTable) Lookup(key tcell.Key, r rune, mod tcell.ModMask) (policy.Command, bool) {
	if key == tcell.KeyRune {
		if mod&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			return policy.CmdNone, false
		}
		c, ok := kt.Runes[r]
		return c, ok
	}
	c, ok := kt.SpecialKeys[key]
	return c, ok
}
