package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/blockfall/parameter"
)

// WaveType selects the oscillator waveform
type WaveType uint8

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-frequency waveform for a set duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite streamer for one waveform burst
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

		val := sampleWave(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep glides linearly between two frequencies over its duration
type sweep struct {
	fromFreq float64
	toFreq   float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewSweep creates a frequency-glide streamer
func NewSweep(fromFreq, toFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		fromFreq: fromFreq,
		toFreq:   toFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		val := sampleWave(s.wave, s.phase)
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.duration)
		freq := s.fromFreq + (s.toFreq-s.fromFreq)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

func sampleWave(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return 0
	}
}

// envelope applies linear attack/release shaping so cues never click
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes a streamer over the given total duration
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

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer's gain.
// Zero or negative gain switches to silent since log2 is undefined there.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CueMove is a short soft tick for a successful horizontal move
func CueMove(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.MoveCueFreq, parameter.MoveCueDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.MoveCueDuration, parameter.CueAttack, parameter.CueRelease, rate)
	return newVolume(shaped, 0.25)
}

// CueRotate is a brighter blip for a committed rotation
func CueRotate(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.RotateCueFreq, parameter.RotateCueDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.RotateCueDuration, parameter.CueAttack, parameter.CueRelease, rate)
	return newVolume(shaped, 0.35)
}

// CueLock is a low thud for a piece settling into the board
func CueLock(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.LockCueFreq, parameter.LockCueDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.LockCueDuration, parameter.CueAttack, parameter.CueRelease, rate)
	return newVolume(shaped, 0.4)
}

// CueLineClear sweeps upward, one octave per cleared line
func CueLineClear(lines int, rate beep.SampleRate) beep.Streamer {
	if lines < 1 {
		lines = 1
	}
	target := parameter.LineClearCueFreq * math.Pow(2, float64(lines))
	swp := NewSweep(parameter.LineClearCueFreq, target, parameter.LineClearCueDuration, WaveSine, rate)
	shaped := NewEnvelope(swp, parameter.LineClearCueDuration, parameter.CueAttack, parameter.CueRelease, rate)
	return newVolume(shaped, 0.5)
}

// CueGameOver is a long downward slide to a fifth below
func CueGameOver(rate beep.SampleRate) beep.Streamer {
	swp := NewSweep(parameter.GameOverCueFreq, parameter.GameOverCueFreq*2.0/3.0, parameter.GameOverCueDuration, WaveSaw, rate)
	shaped := NewEnvelope(swp, parameter.GameOverCueDuration, parameter.CueAttack, parameter.GameOverCueDuration/3, rate)
	return newVolume(shaped, 0.5)
}
