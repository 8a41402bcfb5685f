package host

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/phanxgames/trashdesk"
)

const beepRate = beep.SampleRate(SampleRate)

// BeepAudio plays sounds through the gopxl/beep speaker. It runs without an
// Ebitengine audio context, which makes it usable from headless runs that
// still want sound.
type BeepAudio struct {
	mu          sync.Mutex
	assets      *Assets
	logger      *slog.Logger
	mixer       *beep.Mixer
	buffers     map[trashdesk.Handle]*beep.Buffer
	initialized bool
}

// NewBeepAudio returns an uninitialized player. Call Initialize before Play.
func NewBeepAudio(assets *Assets, logger *slog.Logger) *BeepAudio {
	return &BeepAudio{
		assets:  assets,
		logger:  logger,
		mixer:   &beep.Mixer{},
		buffers: make(map[trashdesk.Handle]*beep.Buffer),
	}
}

// Initialize opens the speaker with a 100ms buffer and starts the mixer.
func (b *BeepAudio) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(beepRate, beepRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Close silences everything still queued on the mixer.
func (b *BeepAudio) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// Play implements trashdesk.SoundPlayer.
func (b *BeepAudio) Play(h trashdesk.Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	buf, err := b.buffer(h)
	if err != nil {
		b.logger.Warn("play sound", "handle", h, "err", err)
		return
	}
	speaker.Lock()
	b.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// buffer decodes the WAV for h once, resampled to the speaker rate.
func (b *BeepAudio) buffer(h trashdesk.Handle) (*beep.Buffer, error) {
	if buf, ok := b.buffers[h]; ok {
		return buf, nil
	}
	data := b.assets.Sound(h)
	if data == nil {
		return nil, fmt.Errorf("no sound for handle %d", h)
	}
	buf, err := decodeWAV(data)
	if err != nil {
		return nil, err
	}
	b.buffers[h] = buf
	return buf, nil
}

func decodeWAV(data []byte) (*beep.Buffer, error) {
	stream, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != beepRate {
		src = beep.Resample(4, format.SampleRate, beepRate, stream)
		format.SampleRate = beepRate
	}
	buf := beep.NewBuffer(format)
	buf.Append(src)
	return buf, nil
}
