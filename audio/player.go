package audio

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
)

const (
	sampleRate  = beep.SampleRate(44100)
	bufferSize  = 100 * time.Millisecond
	maxVoices   = 16 // Reaching this clears every playing cue before the new one starts
	numChannels = 2
	precision   = 2
)

// Player buffers every cue once and mixes requests onto the speaker
// Safe for concurrent use; Play never blocks on audio hardware
type Player struct {
	mu       sync.Mutex
	cfg      config.Audio
	format   beep.Format
	mixer    *beep.Mixer
	clips    [core.SoundTypeCount]clip
	started  bool // Mixer is being drained
	attached bool // Mixer is attached to the speaker and needs its lock
	closed   bool
	logger   *zap.Logger
}

// NewPlayer creates a player and buffers all cues
// Cues missing from cfg.AssetDir are synthesized
func NewPlayer(cfg config.Audio, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Player{
		cfg:    cfg,
		format: beep.Format{SampleRate: sampleRate, NumChannels: numChannels, Precision: precision},
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	p.load()
	return p
}

func (p *Player) load() {
	assets := 0
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		if p.cfg.AssetDir != "" {
			buf, err := loadAsset(p.cfg.AssetDir, s, p.format)
			if err == nil {
				p.clips[s] = clip{buf: buf, source: SourceAsset}
				assets++
				continue
			}
			if !errors.Is(err, os.ErrNotExist) {
				p.logger.Warn("audio asset unusable, synthesizing", zap.String("asset", s.Asset()), zap.Error(err))
			}
		}
		if buf := synthClip(s, p.format); buf != nil {
			p.clips[s] = clip{buf: buf, source: SourceSynth}
		}
	}
	p.logger.Debug("audio cues buffered", zap.Int("assets", assets), zap.Int("total", int(core.SoundTypeCount)))
}

// Start attaches the mixer to the speaker; a disabled player stays silent without error
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled || p.started || p.closed {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	p.attached = true
	return nil
}

// Play queues a cue; returns false when audio is off or the cue has no clip
func (p *Player) Play(sound core.SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || p.closed || sound < 0 || sound >= core.SoundTypeCount {
		return false
	}
	c := p.clips[sound]
	if c.buf == nil {
		return false
	}

	s := &effects.Volume{Streamer: c.buf.Streamer(0, c.buf.Len()), Base: 2, Volume: p.cfg.Volume}
	p.withMixer(func() {
		if p.mixer.Len() >= maxVoices {
			p.mixer.Clear()
		}
		p.mixer.Add(s)
	})
	return true
}

// Source reports where the clip for sound came from
func (p *Player) Source(sound core.SoundType) Source {
	if sound < 0 || sound >= core.SoundTypeCount {
		return SourceNone
	}
	return p.clips[sound].source
}

// Close stops playback; further Play calls return false
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.withMixer(p.mixer.Clear)
	if p.attached {
		speaker.Clear()
	}
	p.closed = true
}

// withMixer runs fn under the speaker lock when the speaker is draining the mixer
func (p *Player) withMixer(fn func()) {
	if p.attached {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
