package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-shooter/audio/cue"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave, optionally sweeping frequency
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added linearly over the full duration
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a constant-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		sweep:    to - from,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewPCG(uint64(from), uint64(to))),
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
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release fade ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf so zero is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue durations
const (
	fireDuration  = 90 * time.Millisecond
	hitDuration   = 60 * time.Millisecond
	deathDuration = 280 * time.Millisecond
)

// FireSound is a short descending laser zap
func FireSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewSweep(1400, 500, fireDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, fireDuration, 5*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, 0.35*cfg.MasterVolume)
}

// HitSound is the 880 Hz blip played on every damaging collision
func HitSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	var osc beep.Streamer
	if sine, err := generators.SineTone(rate, 880); err == nil {
		osc = beep.Take(rate.N(hitDuration), sine)
	} else {
		osc = NewOscillator(880, hitDuration, WaveSine, rate)
	}
	shaped := NewEnvelope(osc, hitDuration, 2*time.Millisecond, 30*time.Millisecond, rate)
	return newVolume(shaped, 0.5*cfg.MasterVolume)
}

// DeathSound layers a noise burst over a falling saw
func DeathSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, deathDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, deathDuration, 5*time.Millisecond, 200*time.Millisecond, rate)

	body := NewSweep(220, 55, deathDuration, WaveSaw, rate)
	bodyShaped := NewEnvelope(body, deathDuration, 10*time.Millisecond, 150*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.4),
		newVolume(bodyShaped, 0.6),
	)
	return newVolume(mixed, 0.6*cfg.MasterVolume)
}

// CueSound returns the streamer for a cue, or nil for an unknown cue
func CueSound(c cue.Cue, cfg Config) beep.Streamer {
	switch c {
	case cue.Fire:
		return FireSound(cfg)
	case cue.Hit:
		return HitSound(cfg)
	case cue.Death:
		return DeathSound(cfg)
	default:
		return nil
	}
}
