package audio

import "github.com/lixenwraith/trainers/parameter"

// Cue identifies a short sound effect
type Cue uint8

const (
	CueBlocked Cue = iota // Refused player command
	CueEnter              // Entering a building
	CueExit               // Leaving a building
	CueQuit

	CueCount
)

var cueNames = [CueCount]string{"blocked", "enter", "exit", "quit"}

func (c Cue) String() string {
	if c >= CueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Config holds output settings
type Config struct {
	SampleRate int
	Volume     float64 // 0.0 - 1.0
}

// DefaultConfig returns the standard output settings
func DefaultConfig() Config {
	return Config{
		SampleRate: parameter.AudioSampleRate,
		Volume:     parameter.AudioDefaultVolume,
	}
}
