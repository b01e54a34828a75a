package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/blockfall/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences or restores all cues
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute state and reports the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether cues are currently silenced
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	sm.mixer.Add(s)
}

// PlayMove plays the tick for a successful horizontal move
func (sm *SoundManager) PlayMove() {
	sm.play(beep.Take(sampleRate.N(parameter.MoveCueDuration), CueMove(sampleRate)))
}

// PlayRotate plays the blip for a committed rotation
func (sm *SoundManager) PlayRotate() {
	sm.play(beep.Take(sampleRate.N(parameter.RotateCueDuration), CueRotate(sampleRate)))
}

// PlayLock plays the thud for a piece settling into the board
func (sm *SoundManager) PlayLock() {
	sm.play(beep.Take(sampleRate.N(parameter.LockCueDuration), CueLock(sampleRate)))
}

// PlayLineClear plays the rising sweep for cleared rows
func (sm *SoundManager) PlayLineClear(lines int) {
	sm.play(beep.Take(sampleRate.N(parameter.LineClearCueDuration), CueLineClear(lines, sampleRate)))
}

// PlayGameOver plays the falling slide when the board tops out
func (sm *SoundManager) PlayGameOver() {
	sm.play(beep.Take(sampleRate.N(parameter.GameOverCueDuration), CueGameOver(sampleRate)))
}
