package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency; cues are short,
	// so latency matters more than throughput
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Shaping
const (
	// CueAttack and CueRelease bound every envelope so cues never click
	CueAttack  = 2 * time.Millisecond
	CueRelease = 20 * time.Millisecond
)

// Cue Timing
const (
	MoveCueDuration      = 30 * time.Millisecond
	RotateCueDuration    = 40 * time.Millisecond
	LockCueDuration      = 80 * time.Millisecond
	LineClearCueDuration = 180 * time.Millisecond
	GameOverCueDuration  = 600 * time.Millisecond
)

// Cue Frequencies
const (
	MoveCueFreq   = 660.0
	RotateCueFreq = 880.0
	LockCueFreq   = 140.0

	// LineClearCueFreq sweeps up from here, one octave per cleared line
	LineClearCueFreq = 440.0

	// GameOverCueFreq sweeps down to a fifth below
	GameOverCueFreq = 330.0
)
