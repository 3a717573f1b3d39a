package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/invaders/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, optionally sliding linearly from freq to freqEnd
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one pitch to another over its duration
// Noise is seeded so a synthesized cue is identical on every run
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		freqEnd:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewPCG(uint64(from), uint64(to))),
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
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.freqEnd-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
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

	releaseStart := max(e.totalSamples-e.releaseSamples, e.attackSamples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain
// math.Log2(0) is -Inf, so zero gain is rendered silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}

// Cue timings
const (
	shootDuration  = 120 * time.Millisecond
	killedDuration = 250 * time.Millisecond
	noteDuration   = 90 * time.Millisecond
	cueAttack      = 5 * time.Millisecond
)

// invaderNotes is the descending four-note march, in Hz
var invaderNotes = [core.InvaderNoteCount]float64{110.0, 98.0, 87.31, 82.41}

// createShootSound is a short downward square chirp
func createShootSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(1400, 400, shootDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, shootDuration, cueAttack, shootDuration/2, rate), 0.3)
}

// createInvaderKilledSound mixes a noise burst over a falling saw
func createInvaderKilledSound(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, killedDuration, WaveNoise, rate), killedDuration, cueAttack, killedDuration, rate)
	body := NewEnvelope(NewSweep(600, 90, killedDuration, WaveSaw, rate), killedDuration, cueAttack, killedDuration/2, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.5), newVolume(body, 0.5)), 0.4)
}

// createInvaderNote is one low square thump of the march
func createInvaderNote(i int, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(invaderNotes[i%core.InvaderNoteCount], noteDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, noteDuration, cueAttack, noteDuration/3, rate), 0.35)
}

// synthesize returns the fallback streamer for a cue, nil for unknown cues
func synthesize(sound core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case core.SoundShoot:
		return createShootSound(rate)
	case core.SoundInvaderKilled:
		return createInvaderKilledSound(rate)
	case core.SoundInvaderNote0, core.SoundInvaderNote1, core.SoundInvaderNote2, core.SoundInvaderNote3:
		return createInvaderNote(int(sound-core.SoundInvaderNote0), rate)
	default:
		return nil
	}
}
