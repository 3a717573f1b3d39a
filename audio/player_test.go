package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
)

func testAudioConfig(dir string) config.Audio {
	return config.Audio{Enabled: true, AssetDir: dir}
}

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = max(peak, smp[0], -smp[0])
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestPlayerSynthesizesMissingAssets(t *testing.T) {
	p := NewPlayer(testAudioConfig(t.TempDir()), nil)
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		assert.Equal(t, SourceSynth, p.Source(s), s.Asset())
		require.NotNil(t, p.clips[s].buf)
		assert.Positive(t, p.clips[s].buf.Len())
	}
	assert.Equal(t, SourceNone, p.Source(core.SoundTypeCount))
}

func TestPlayerCorruptAssetFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, filepath.FromSlash(core.SoundShoot.Asset()))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("not an ogg stream"), 0o644))

	p := NewPlayer(testAudioConfig(dir), nil)
	assert.Equal(t, SourceSynth, p.Source(core.SoundShoot))
}

func TestPlayerGracefulDegradation(t *testing.T) {
	p := NewPlayer(testAudioConfig(""), nil)

	assert.NotPanics(t, func() {
		assert.False(t, p.Play(core.SoundShoot), "not started")
		p.Close()
		p.Close()
		assert.False(t, p.Play(core.SoundShoot), "closed")
		assert.NoError(t, p.Start(), "start after close is a no-op")
	})
}

func TestPlayerDisabledStartIsNoop(t *testing.T) {
	cfg := testAudioConfig("")
	cfg.Enabled = false
	p := NewPlayer(cfg, nil)
	require.NoError(t, p.Start())
	assert.False(t, p.Play(core.SoundInvaderKilled))
}

func TestPlayerMixesRequests(t *testing.T) {
	p := NewPlayer(testAudioConfig(""), nil)
	// Drain the mixer by hand instead of opening a device
	p.started = true

	assert.True(t, p.Play(core.SoundShoot))
	assert.True(t, p.Play(core.SoundInvaderNote2))
	assert.False(t, p.Play(core.SoundType(-1)))
	assert.Equal(t, 2, p.mixer.Len())

	buf := make([][2]float64, sampleRate.N(50*time.Millisecond))
	n, ok := p.mixer.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, len(buf), n)
	peak := 0.0
	for _, smp := range buf {
		peak = max(peak, smp[0], -smp[0])
	}
	assert.Positive(t, peak)

	p.withMixer(p.mixer.Clear)
	for range maxVoices {
		p.Play(core.SoundInvaderNote0)
	}
	assert.Equal(t, maxVoices, p.mixer.Len())
	assert.True(t, p.Play(core.SoundShoot))
	assert.Equal(t, 1, p.mixer.Len(), "a full mixer is cleared before the new cue")
}

func TestOscillatorLength(t *testing.T) {
	n, peak := drain(NewOscillator(440, 100*time.Millisecond, WaveSquare, sampleRate))
	assert.Equal(t, sampleRate.N(100*time.Millisecond), n)
	assert.Equal(t, 1.0, peak)
}

func TestEnvelopeShapesEdges(t *testing.T) {
	d := 20 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSaw, sampleRate), d, 5*time.Millisecond, 5*time.Millisecond, sampleRate)

	buf := make([][2]float64, sampleRate.N(d))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)
	// zero-frequency saw is a constant -1
	assert.Equal(t, 0.0, buf[0][0])
	assert.Equal(t, -1.0, buf[n/2][0])
	assert.Greater(t, buf[n-1][0], -0.01)
}

func TestSynthesizedNotesShareLength(t *testing.T) {
	var lengths []int
	for i := range core.InvaderNoteCount {
		n, peak := drain(synthesize(core.InvaderNote(i), sampleRate))
		assert.Positive(t, peak)
		lengths = append(lengths, n)
	}
	assert.Equal(t, []int{lengths[0], lengths[0], lengths[0], lengths[0]}, lengths)
	assert.Nil(t, synthesize(core.SoundTypeCount, sampleRate))
}
