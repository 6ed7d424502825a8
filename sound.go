package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"maze3d/logger"
)

const (
	sampleRate   = 44100
	victoryAudio = "victory.wav"
)

// Sound plays the victory jingle. A zero Sound is silent.
type Sound struct {
	ctx     *audio.Context
	victory []byte
	player  *audio.Player
}

// LoadSound decodes the victory jingle from fsys. Audio problems are logged
// and leave the game silent rather than failing startup.
func LoadSound(fsys fs.FS, enabled bool) *Sound {
	if !enabled || fsys == nil {
		return &Sound{}
	}
	raw, err := fs.ReadFile(fsys, victoryAudio)
	if err != nil {
		logger.Log.WithError(err).Warn("victory sound unavailable")
		return &Sound{}
	}
	pcm, err := decodeWAV(raw)
	if err != nil {
		logger.Log.WithError(err).Warn("victory sound unavailable")
		return &Sound{}
	}
	return &Sound{
		ctx:     audio.NewContext(sampleRate),
		victory: pcm,
	}
}

// decodeWAV returns 16-bit stereo PCM at sampleRate.
func decodeWAV(raw []byte) ([]byte, error) {
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", victoryAudio, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %s: %w", victoryAudio, err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("%s has no audio data", victoryAudio)
	}
	return pcm, nil
}

func (s *Sound) PlayVictory() {
	if s.ctx == nil {
		return
	}
	if s.player == nil {
		s.player = s.ctx.NewPlayerFromBytes(s.victory)
	}
	if err := s.player.Rewind(); err != nil {
		logger.Log.WithError(err).Warn("rewinding victory sound")
		return
	}
	s.player.Play()
}
