package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/vorbis"

	"github.com/lixenwraith/invaders/core"
)

// Source tells where a cached clip came from
type Source uint8

const (
	SourceNone  Source = iota // Unknown cue
	SourceAsset               // Decoded from the asset directory
	SourceSynth               // Generated fallback
)

func (s Source) String() string {
	switch s {
	case SourceAsset:
		return "asset"
	case SourceSynth:
		return "synth"
	default:
		return "none"
	}
}

// clip is a fully buffered cue, replayable any number of times
type clip struct {
	buf    *beep.Buffer
	source Source
}

// loadAsset decodes an ogg cue from dir and resamples it to format's rate
func loadAsset(dir string, sound core.SoundType, format beep.Format) (*beep.Buffer, error) {
	path := filepath.Join(dir, filepath.FromSlash(sound.Asset()))
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, fileFormat, err := vorbis.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if fileFormat.SampleRate != format.SampleRate {
		s = beep.Resample(4, fileFormat.SampleRate, format.SampleRate, streamer)
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

// synthClip renders the generated fallback into a buffer
func synthClip(sound core.SoundType, format beep.Format) *beep.Buffer {
	s := synthesize(sound, format.SampleRate)
	if s == nil {
		return nil
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf
}
