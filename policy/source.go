package policy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var ErrUnknownCommand = errors.New("unknown command")

// CommandSource supplies player commands
// Next blocks until a command is available, the context ends or input is exhausted (io.EOF)
type CommandSource interface {
	Next(ctx context.Context) (Command, error)
}

// ScriptSource replays a fixed command list
type ScriptSource struct {
	cmds     []Command
	pos      int
	fallback Command // Returned after the script ends; CmdNone means io.EOF
}

// NewScriptSource replays cmds, then fallback forever (or io.EOF when fallback is CmdNone)
func NewScriptSource(cmds []Command, fallback Command) *ScriptSource {
	return &ScriptSource{cmds: cmds, fallback: fallback}
}

func (s *ScriptSource) Next(ctx context.Context) (Command, error) {
	if err := ctx.Err(); err != nil {
		return CmdNone, err
	}
	if s.pos < len(s.cmds) {
		c := s.cmds[s.pos]
		s.pos++
		return c, nil
	}
	if s.fallback == CmdNone {
		return CmdNone, io.EOF
	}
	return s.fallback, nil
}

// Remaining returns the number of unread script commands
func (s *ScriptSource) Remaining() int {
	return len(s.cmds) - s.pos
}

// ParseScript reads whitespace or comma separated tokens
// A token is a command name ("n", "enter", "pass") or a single bound key rune ("8", ">", "Q")
func ParseScript(text string) ([]Command, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	cmds := make([]Command, 0, len(fields))
	for i, tok := range fields {
		c, ok := lookupToken(tok)
		if !ok {
			return nil, fmt.Errorf("%w: token %d %q", ErrUnknownCommand, i, tok)
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

func lookupToken(tok string) (Command, bool) {
	lower := strings.ToLower(tok)
	for c := CmdMoveNW; c < CmdCount; c++ {
		if commandNames[c] == lower {
			return c, true
		}
	}
	if utf8.RuneCountInString(tok) == 1 {
		r, _ := utf8.DecodeRuneInString(tok)
		return CommandForRune(r)
	}
	return CmdNone, false
}
