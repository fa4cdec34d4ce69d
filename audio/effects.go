package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/trainers/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length periodic wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave generator that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: start,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		switch {
		case e.position < e.attack:
			vol = float64(e.position) / float64(e.attack)
		case e.position >= e.releaseStart && e.release > 0:
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent since the base-2 gain of 0 is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// blockedSound is a low saw buzz
func blockedSound(rate beep.SampleRate) beep.Streamer {
	return tone(110.0, WaveSaw,
		parameter.BlockedSoundDuration, parameter.BlockedSoundAttack, parameter.BlockedSoundRelease, rate)
}

// doorSound plays two square notes, rising for entry and falling for exit
func doorSound(rate beep.SampleRate, rising bool) beep.Streamer {
	low, high := 523.25, 783.99 // C5, G5
	if !rising {
		low, high = high, low
	}
	d, a, r := parameter.DoorSoundNoteDuration, parameter.DoorSoundAttack, parameter.DoorSoundRelease
	return beep.Seq(
		newVolume(tone(low, WaveSquare, d, a, r, rate), 0.6),
		newVolume(tone(high, WaveSquare, d, a, r, rate), 0.6),
	)
}

// quitSound is a sine fading out with its octave
func quitSound(rate beep.SampleRate) beep.Streamer {
	d, a, r := parameter.QuitSoundDuration, parameter.QuitSoundAttack, parameter.QuitSoundRelease
	return beep.Mix(
		newVolume(tone(440.0, WaveSine, d, a, r, rate), 0.7),
		newVolume(tone(220.0, WaveSine, d, a, r, rate), 0.3),
	)
}

// NewCueSound builds a fresh streamer for cue c at the configured volume
func NewCueSound(c Cue, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch c {
	case CueBlocked:
		s = blockedSound(rate)
	case CueEnter:
		s = doorSound(rate, true)
	case CueExit:
		s = doorSound(rate, false)
	case CueQuit:
		s = quitSound(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.Volume)
}
