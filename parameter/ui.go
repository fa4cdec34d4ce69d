package parameter

// Screen layout
const (
	// MessageRow shows building and roster notifications
	MessageRow = 0

	// MapTop is the first screen row of the map
	MapTop = 1

	// StatusRow sits below the map
	StatusRow = MapTop + MapHeight

	// ScreenMinWidth and ScreenMinHeight fit message, map and status rows
	ScreenMinWidth  = MapWidth
	ScreenMinHeight = StatusRow + 1
)

// Roster overlay
const (
	RosterBoxX     = 10
	RosterBoxY     = MapTop + 2
	RosterBoxWidth = 60

	// RosterVisibleLines is the number of entries shown; the window scrolls with the cursor
	RosterVisibleLines = 15

	RosterTitle = " Trainers "
	RosterHint  = " up/down scroll, esc close "
)

// SessionTagLen is how much of the session id the status line shows
const SessionTagLen = 8

// HeadlessDefaultTurns bounds a headless run without a script or turn limit
const HeadlessDefaultTurns = 100

// PollBufferSize is the terminal event channel capacity
const PollBufferSize = 100
