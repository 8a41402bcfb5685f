package host

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/phanxgames/trashdesk"
)

// SampleRate is the output rate of both audio backends.
const SampleRate = 44100

// EbitenAudio plays sounds through Ebitengine's audio context. Decoded PCM
// is cached per handle; each Play starts an independent player so clicks can
// overlap.
type EbitenAudio struct {
	ctx    *audio.Context
	assets *Assets
	logger *slog.Logger
	pcm    map[trashdesk.Handle][]byte
}

// NewEbitenAudio creates the audio context. Only one context may exist per
// process.
func NewEbitenAudio(assets *Assets, logger *slog.Logger) *EbitenAudio {
	return &EbitenAudio{
		ctx:    audio.NewContext(SampleRate),
		assets: assets,
		logger: logger,
		pcm:    make(map[trashdesk.Handle][]byte),
	}
}

// Play implements trashdesk.SoundPlayer. Failures are logged and dropped.
func (a *EbitenAudio) Play(h trashdesk.Handle) {
	pcm, err := a.decode(h)
	if err != nil {
		a.logger.Warn("play sound", "handle", h, "err", err)
		return
	}
	a.ctx.NewPlayerFromBytes(pcm).Play()
}

func (a *EbitenAudio) decode(h trashdesk.Handle) ([]byte, error) {
	if pcm, ok := a.pcm[h]; ok {
		return pcm, nil
	}
	data := a.assets.Sound(h)
	if data == nil {
		return nil, fmt.Errorf("no sound for handle %d", h)
	}
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}
	a.pcm[h] = pcm
	return pcm, nil
}
