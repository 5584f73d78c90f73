package system

import (
	"github.com/lixenwraith/vi-shooter/audio/cue"
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/event"
)

// AudioCueSystem turns gameplay events into sound cues
// It keeps its own readers, so it never consumes events meant for the damage resolver
type AudioCueSystem struct {
	engine.SystemBase

	collisions event.Reader[event.Collision]
	fired      event.Reader[event.Fired]
	despawned  event.Reader[event.Despawned]
}

// NewAudioCueSystem creates a new audio cue system
func NewAudioCueSystem() *AudioCueSystem {
	return &AudioCueSystem{SystemBase: engine.NewSystemBase()}
}

// Name returns system's name
func (s *AudioCueSystem) Name() string {
	return "audio_cue"
}

// Update plays at most one hit cue per tick, one fire cue per shot and one death cue per kill
// Readers advance even without a player so cues never replay late
func (s *AudioCueSystem) Update(w *engine.World) {
	player, _ := engine.GetResource[cue.Player](w.Resources)

	hits := s.collisions.Unread(event.Log[event.Collision](w.Events))
	s.collisions.Skip(event.Log[event.Collision](w.Events))
	if hits > 0 && player != nil {
		player.Play(cue.Hit)
	}

	for range s.fired.Read(event.Log[event.Fired](w.Events)) {
		if player != nil {
			player.Play(cue.Fire)
		}
	}

	for ev := range s.despawned.Read(event.Log[event.Despawned](w.Events)) {
		if player != nil && ev.Reason == event.ReasonKilled {
			player.Play(cue.Death)
		}
	}
}
