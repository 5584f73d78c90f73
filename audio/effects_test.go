package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-shooter/audio/cue"
)

// drain streams s to completion and returns the number of samples produced
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			require.LessOrEqual(t, buf[i][0], 1.0)
			require.GreaterOrEqual(t, buf[i][0], -1.0)
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never drained")
	return 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		assert.Equal(t, rate.N(100*time.Millisecond), drain(t, osc), "wave %d", wave)
		assert.NoError(t, osc.Err())
	}
}

func TestSquareWaveLevels(t *testing.T) {
	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	buf := make([][2]float64, 64)
	n, ok := osc.Stream(buf)
	require.True(t, ok)
	for i := 0; i < n; i++ {
		assert.Contains(t, []float64{-1, 1}, buf[i][0])
	}
}

func TestEnvelopeRampsFromSilence(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	require.Equal(t, 1000, n)
	assert.Zero(t, buf[0][0])
	assert.InDelta(t, 0.5, buf[50][0], 1e-9)
	assert.Equal(t, 1.0, buf[500][0])
	assert.InDelta(t, 0.1, buf[990][0], 1e-9)
}

func TestCueSoundsAreFinite(t *testing.T) {
	cfg := DefaultConfig()
	for _, c := range []cue.Cue{cue.Fire, cue.Hit, cue.Death} {
		s := CueSound(c, cfg)
		require.NotNil(t, s, c.String())
		assert.Positive(t, drain(t, s), c.String())
	}
	assert.Nil(t, CueSound(cue.Cue(42), cfg))
}

func TestSoundManagerDropsWhenUninitialized(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, zerolog.Nop())
	require.NoError(t, sm.Initialize())

	sm.PlayFire()
	sm.PlayHit()
	sm.PlayDeath()

	played, dropped := sm.Stats()
	assert.Zero(t, played)
	assert.EqualValues(t, 3, dropped)
	sm.Cleanup()
}
