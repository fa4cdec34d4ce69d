package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/trainers/parameter"
)

// SoundManager plays cues through the speaker
// Every method is safe to call before Initialize or after Cleanup; cues are then dropped
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	played      [CueCount]int
}

// NewSoundManager creates a manager with the given output settings
func NewSoundManager(cfg Config) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues cue c on the mixer
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || c >= CueCount {
		return
	}
	s := NewCueSound(c, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[c]++
}

// Played returns how many times c reached the mixer
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if c >= CueCount {
		return 0
	}
	return sm.played[c]
}

// Cleanup lets queued cues finish, then silences the mixer and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	waitDrained(func() int {
		speaker.Lock()
		defer speaker.Unlock()
		return sm.mixer.Len()
	}, parameter.AudioDrainTimeout, parameter.AudioDrainPoll)

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// waitDrained polls pending until it reports zero or timeout passes
func waitDrained(pending func() int, timeout, poll time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for pending() > 0 {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(poll)
	}
	return true
}
