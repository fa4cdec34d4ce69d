package input

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/trainers/policy"
)

func TestDefaultKeyTableRunes(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		r    rune
		want policy.Command
	}{
		{'7', policy.CmdMoveNW},
		{'8', policy.CmdMoveN},
		{'9', policy.CmdMoveNE},
		{'4', policy.CmdMoveW},
		{'6', policy.CmdMoveE},
		{'1', policy.CmdMoveSW},
		{'2', policy.CmdMoveS},
		{'3', policy.CmdMoveSE},
		{'y', policy.CmdMoveNW},
		{'n', policy.CmdMoveSE},
		{'>', policy.CmdEnterBuilding},
		{'<', policy.CmdExitBuilding},
		{'t', policy.CmdOpenRoster},
		{' ', policy.CmdPass},
		{'5', policy.CmdPass},
		{'Q', policy.CmdQuit},
	}
	for _, tt := range tests {
		got, ok := kt.Lookup(tcell.KeyRune, tt.r, tcell.ModNone)
		require.True(t, ok, "rune %q", tt.r)
		assert.Equal(t, tt.want, got, "rune %q", tt.r)
	}

	_, ok := kt.Lookup(tcell.KeyRune, 'z', tcell.ModNone)
	assert.False(t, ok)
	_, ok = kt.Lookup(tcell.KeyRune, '6', tcell.ModAlt)
	assert.False(t, ok)
}

func TestDefaultKeyTableSpecialKeys(t *testing.T) {
	kt := DefaultKeyTable()

	tests := map[tcell.Key]policy.Command{
		tcell.KeyCtrlC:  policy.CmdQuit,
		tcell.KeyEscape: policy.CmdCloseView,
		tcell.KeyUp:     policy.CmdLineUp,
		tcell.KeyDown:   policy.CmdLineDown,
	}
	for key, want := range tests {
		got, ok := kt.Lookup(key, 0, tcell.ModNone)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := kt.Lookup(tcell.KeyF1, 0, tcell.ModNone)
	assert.False(t, ok)
}

type tick struct{}

func (tick) When() time.Time { return time.Time{} }

func TestSourceSkipsUnboundEvents(t *testing.T) {
	events := make(chan tcell.Event, 4)
	src := NewSource(events, nil)

	resized := 0
	src.OnResize = func() { resized++ }

	events <- tick{}
	events <- tcell.NewEventResize(80, 24)
	close(events)

	_, err := src.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 1, resized)
	assert.Equal(t, 1, src.Ignored())
}

func TestSourceContextCancel(t *testing.T) {
	src := NewSource(make(chan tcell.Event), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	cmd, err := src.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, policy.CmdNone, cmd)
}
