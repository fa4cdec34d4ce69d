package input

import (
	"context"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trainers/policy"
)

// Source turns polled terminal events into player commands
// The event channel is fed by a single poller goroutine; Next runs on the simulation goroutine
type Source struct {
	events <-chan tcell.Event
	table  *KeyTable

	// OnResize is invoked for terminal resize events, typically to redraw
	OnResize func()

	ignored int
}

// NewSource reads from events using table; a nil table selects the default bindings
func NewSource(events <-chan tcell.Event, table *KeyTable) *Source {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Source{events: events, table: table}
}

// Next blocks until a bound key arrives, the channel closes or ctx ends
func (s *Source) Next(ctx context.Context) (policy.Command, error) {
	for {
		select {
		case <-ctx.Done():
			return policy.CmdNone, ctx.Err()
		case ev, ok := <-s.events:
			if !ok {
				return policy.CmdNone, io.EOF
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if c, ok := s.table.Lookup(ev.Key(), ev.Rune(), ev.Modifiers()); ok {
					return c, nil
				}
				s.ignored++
			case *tcell.EventResize:
				if s.OnResize != nil {
					s.OnResize()
				}
			default:
				s.ignored++
			}
		}
	}
}

// Ignored returns how many events were dropped as unbound
func (s *Source) Ignored() int {
	return s.ignored
}

var _ policy.CommandSource = (*Source)(nil)
