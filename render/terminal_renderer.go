package render

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trainers/agent"
	"github.com/lixenwraith/trainers/parameter"
	"github.com/lixenwraith/trainers/sim"
	"github.com/lixenwraith/trainers/terrain"
)

// playerMark identifies the player state a message belongs to
type playerMark struct {
	pos        terrain.Point
	inBuilding bool
}

// TerminalRenderer draws the simulation onto a tcell screen
// Messages stay on the message row until the player changes position or building state
type TerminalRenderer struct {
	screen  tcell.Screen
	palette Palette

	message       string
	anchor        playerMark
	anchorPending bool

	last    sim.View
	hasView bool
}

// NewTerminalRenderer creates a renderer over an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen:  screen,
		palette: DefaultPalette(),
	}
}

// DrawMap renders message, map and status rows
func (r *TerminalRenderer) DrawMap(v sim.View) {
	mark := playerMark{pos: v.Player.Pos, inBuilding: v.Player.InBuilding}
	switch {
	case r.anchorPending:
		r.anchor = mark
		r.anchorPending = false
	case r.message != "" && mark != r.anchor:
		r.message = ""
	}

	r.last = v
	r.hasView = true

	r.screen.Clear()
	r.drawMessage()
	r.drawGrid(v)
	r.drawStatusBar(v)
	r.screen.Show()
}

// DrawRoster overlays the trainer list on the map
func (r *TerminalRenderer) DrawRoster(entries []agent.RosterEntry, cursor int) {
	r.drawRosterBox(entries, cursor)
	r.screen.Show()
}

// Notify replaces the message row
func (r *TerminalRenderer) Notify(msg string) {
	r.message = msg
	r.anchorPending = true
	r.drawMessage()
	r.screen.Show()
}

// Redraw repaints the last view after a resize
func (r *TerminalRenderer) Redraw() {
	r.screen.Sync()
	if !r.hasView {
		return
	}
	r.screen.Clear()
	r.drawMessage()
	r.drawGrid(r.last)
	r.drawStatusBar(r.last)
	r.screen.Show()
}

func (r *TerminalRenderer) drawMessage() {
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbMessage)
	r.clearRow(parameter.MessageRow, style)
	r.drawText(0, parameter.MessageRow, r.message, style)
}

func (r *TerminalRenderer) drawGrid(v sim.View) {
	if v.Grid == nil {
		return
	}
	for y := 0; y < terrain.Height; y++ {
		for x := 0; x < terrain.Width; x++ {
			t := v.Grid.Tiles[y][x]
			r.screen.SetContent(x, parameter.MapTop+y, t.Glyph(), nil, r.palette.Style(t))
		}
	}

	// Inside a building the player cell shows the building
	if v.Player.InBuilding && v.Player.Placeholder.IsLandmark() {
		p := v.Player.Pos
		b := v.Player.Placeholder
		r.screen.SetContent(p.X, parameter.MapTop+p.Y, b.Glyph(), nil, r.palette.Style(b).Reverse(true))
	}
}

func (r *TerminalRenderer) drawStatusBar(v sim.View) {
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)
	r.clearRow(parameter.StatusRow, style)

	session := v.Session
	if len(session) > parameter.SessionTagLen {
		session = session[:parameter.SessionTagLen]
	}
	text := fmt.Sprintf(" Map %s  Pos %d,%d  Tick %s  Round %s  Session %s",
		v.Coord, v.Player.Pos.X, v.Player.Pos.Y,
		humanize.Comma(v.Ticks), humanize.Comma(v.Rounds), session)
	r.drawText(0, parameter.StatusRow, text, style)
}

// rosterWindow returns the first visible entry so the cursor stays in view
func rosterWindow(n, cursor, visible int) int {
	if n <= visible || cursor < visible/2 {
		return 0
	}
	start := cursor - visible/2
	if start > n-visible {
		start = n - visible
	}
	return start
}

func (r *TerminalRenderer) drawRosterBox(entries []agent.RosterEntry, cursor int) {
	boxStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbRosterBox)
	lineStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbMessage)

	visible := parameter.RosterVisibleLines
	if len(entries) < visible {
		visible = len(entries)
	}
	x0, y0 := parameter.RosterBoxX, parameter.RosterBoxY
	w, h := parameter.RosterBoxWidth, visible+2

	// Frame
	for x := x0; x < x0+w; x++ {
		r.screen.SetContent(x, y0, '─', nil, boxStyle)
		r.screen.SetContent(x, y0+h-1, '─', nil, boxStyle)
	}
	for y := y0; y < y0+h; y++ {
		r.screen.SetContent(x0, y, '│', nil, boxStyle)
		r.screen.SetContent(x0+w-1, y, '│', nil, boxStyle)
	}
	r.screen.SetContent(x0, y0, '┌', nil, boxStyle)
	r.screen.SetContent(x0+w-1, y0, '┐', nil, boxStyle)
	r.screen.SetContent(x0, y0+h-1, '└', nil, boxStyle)
	r.screen.SetContent(x0+w-1, y0+h-1, '┘', nil, boxStyle)
	r.drawText(x0+2, y0, parameter.RosterTitle, boxStyle)
	r.drawText(x0+w-2-len(parameter.RosterHint), y0+h-1, parameter.RosterHint, boxStyle)

	start := rosterWindow(len(entries), cursor, visible)
	for i := 0; i < visible; i++ {
		idx := start + i
		y := y0 + 1 + i
		style := lineStyle
		if idx == cursor {
			style = style.Reverse(true)
		}
		for x := x0 + 1; x < x0+w-1; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
		r.drawTextClipped(x0+2, y, x0+w-2, entries[idx].String(), style)
	}
}

func (r *TerminalRenderer) clearRow(y int, style tcell.Style) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawTextClipped(x, y, w, text, style)
}

// drawTextClipped writes text from x, stopping before limit
func (r *TerminalRenderer) drawTextClipped(x, y, limit int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= limit {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

var _ sim.Presenter = (*TerminalRenderer)(nil)
