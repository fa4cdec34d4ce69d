package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(8000)

// drain reads s to the end and returns every left-channel sample
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 256)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			out = append(out, smp[0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("stream did not end")
	return nil
}

func peak(samples []float64) float64 {
	m := 0.0
	for _, v := range samples {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	samples := drain(t, osc)
	assert.Len(t, samples, testRate.N(100*time.Millisecond))
	assert.InDelta(t, 1.0, peak(samples), 0.01)
}

func TestEnvelopeRamps(t *testing.T) {
	osc := NewOscillator(100, 100*time.Millisecond, WaveSquare, testRate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, testRate)
	samples := drain(t, env)
	require.NotEmpty(t, samples)

	assert.Zero(t, samples[0])
	assert.InDelta(t, 1.0, math.Abs(samples[len(samples)/2]), 1e-9)
	assert.Less(t, math.Abs(samples[len(samples)-1]), 0.01)
}

func TestCueSounds(t *testing.T) {
	cfg := Config{SampleRate: int(testRate), Volume: 1.0}
	for c := Cue(0); c < CueCount; c++ {
		t.Run(c.String(), func(t *testing.T) {
			s := NewCueSound(c, cfg)
			require.NotNil(t, s)
			samples := drain(t, s)
			assert.NotEmpty(t, samples)
			assert.Positive(t, peak(samples))
			assert.LessOrEqual(t, peak(samples), 1.0+1e-9)
		})
	}
	assert.Nil(t, NewCueSound(CueCount, cfg))
}

func TestCueSilentAtZeroVolume(t *testing.T) {
	s := NewCueSound(CueQuit, Config{SampleRate: int(testRate), Volume: 0})
	assert.Zero(t, peak(drain(t, s)))
}

func TestDoorSoundsMirror(t *testing.T) {
	cfg := Config{SampleRate: int(testRate), Volume: 1.0}
	enter := drain(t, NewCueSound(CueEnter, cfg))
	exit := drain(t, NewCueSound(CueExit, cfg))
	assert.Equal(t, len(enter), len(exit))
}
