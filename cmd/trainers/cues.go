package main

import (
	"github.com/lixenwraith/trainers/audio"
	"github.com/lixenwraith/trainers/sim"
)

// cuePlayer is the subset of the sound manager the listener needs
type cuePlayer interface {
	Play(c audio.Cue)
}

// cueListener turns simulation events into sound cues
type cueListener struct {
	player cuePlayer
}

var eventCues = map[sim.Event]audio.Cue{
	sim.EventBlocked: audio.CueBlocked,
	sim.EventEnter:   audio.CueEnter,
	sim.EventExit:    audio.CueExit,
	sim.EventQuit:    audio.CueQuit,
}

func (l cueListener) OnEvent(e sim.Event) {
	if c, ok := eventCues[e]; ok {
		l.player.Play(c)
	}
}
