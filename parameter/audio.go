package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
	AudioDefaultVolume  = 0.5

	// AudioDrainTimeout bounds how long Cleanup waits for queued cues to finish
	AudioDrainTimeout = 2 * QuitSoundDuration
	AudioDrainPoll    = 10 * time.Millisecond
)

// Blocked move buzz
const (
	BlockedSoundDuration = 80 * time.Millisecond
	BlockedSoundAttack   = 5 * time.Millisecond
	BlockedSoundRelease  = 20 * time.Millisecond
)

// Building door chime
const (
	DoorSoundNoteDuration = 90 * time.Millisecond
	DoorSoundAttack       = 5 * time.Millisecond
	DoorSoundRelease      = 40 * time.Millisecond
)

// Quit tone
const (
	QuitSoundDuration = 250 * time.Millisecond
	QuitSoundAttack   = 10 * time.Millisecond
	QuitSoundRelease  = 150 * time.Millisecond
)
