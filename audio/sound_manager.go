package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-shooter/audio/cue"
)

var _ cue.Player = (*SoundManager)(nil)

// Config controls cue synthesis and playback
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
}

// DefaultConfig returns audio enabled at 48 kHz and 70% volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   48000,
		MasterVolume: 0.7,
	}
}

// SoundManager plays cues through the system speaker via a beep mixer
// Without an audio device it stays uninitialized and drops every cue
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool

	played  atomic.Uint64
	dropped atomic.Uint64

	log zerolog.Logger
}

var _ Player = (*SoundManager)(nil)

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg Config, log zerolog.Logger) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		log:   log.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker; a disabled config is not an error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return eris.Wrap(err, "failed to initialize speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info().Int("sample_rate", sm.cfg.SampleRate).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
	sm.log.Info().
		Uint64("played", sm.played.Load()).
		Uint64("dropped", sm.dropped.Load()).
		Msg("audio closed")
}

// Play implements cue.Player
func (sm *SoundManager) Play(c cue.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		sm.dropped.Add(1)
		return
	}
	streamer := CueSound(c, sm.cfg)
	if streamer == nil {
		sm.dropped.Add(1)
		return
	}

	// speaker.Lock guards the mixer against the playback goroutine
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played.Add(1)
}

// PlayFire plays the laser cue
func (sm *SoundManager) PlayFire() { sm.Play(cue.Fire) }

// PlayHit plays the collision cue
func (sm *SoundManager) PlayHit() { sm.Play(cue.Hit) }

// PlayDeath plays the explosion cue
func (sm *SoundManager) PlayDeath() { sm.Play(cue.Death) }

// Stats returns played and dropped cue counts
func (sm *SoundManager) Stats() (played, dropped uint64) {
	return sm.played.Load(), sm.dropped.Load()
}
