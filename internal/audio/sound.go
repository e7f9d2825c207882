// Package audio plays short synthesized effects for scene events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-dodge/internal/scene"
)

const sampleRate = beep.SampleRate(44100)

// Effect identifies a sound effect.
type Effect int

const (
	EffectNone  Effect = iota
	EffectBlip         // Obstacle spawned
	EffectBuzz         // Game over
	EffectChirp        // Button activated
)

// EffectFor returns the effect played for a scene event.
func EffectFor(ev scene.Event) Effect {
	switch ev.(type) {
	case scene.SpawnEvent:
		return EffectBlip
	case scene.GameOverEvent:
		return EffectBuzz
	case scene.ButtonEvent:
		return EffectChirp
	}
	return EffectNone
}

// SoundManager owns the speaker and mixes effects into it. Every method is
// safe to call before Initialize or after it failed; nothing is played then.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize sets up the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play mixes one effect in.
func (sm *SoundManager) Play(e Effect) {
	streamer := Stream(e)
	if streamer == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Listen is a scene.Listener.
func (sm *SoundManager) Listen(ev scene.Event) {
	sm.Play(EffectFor(ev))
}

// Stream returns a finite streamer for the effect, or nil for EffectNone.
func Stream(e Effect) beep.Streamer {
	switch e {
	case EffectBlip:
		return beep.Take(sampleRate.N(60*time.Millisecond), NewTone(sampleRate, 880, 880, 40, 0.25))
	case EffectBuzz:
		buzz := NewTone(sampleRate, 110, 70, 4, 0.3)
		buzz.Harmonics = 3
		return beep.Take(sampleRate.N(450*time.Millisecond), buzz)
	case EffectChirp:
		return beep.Take(sampleRate.N(90*time.Millisecond), NewTone(sampleRate, 600, 1200, 20, 0.2))
	}
	return nil
}
