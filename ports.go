package trashdesk

// Handle is an opaque reference to a loaded asset. The core only stores
// handles; the host resolves them back to textures and sounds.
type Handle uint32

// NoHandle is the zero Handle. Draw code falls back to a solid fill for
// entities whose texture is NoHandle.
const NoHandle Handle = 0

// AssetLoader resolves named assets (artwork files, sounds) to handles.
type AssetLoader interface {
	Load(name string) (Handle, error)
}

// SoundPlayer plays a loaded sound. Play must not block; playback is
// fire-and-forget.
type SoundPlayer interface {
	Play(sound Handle)
}

// InputSource supplies one pointer snapshot per frame.
type InputSource interface {
	Snapshot() InputSnapshot
}

// EventStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to it.
type EventStore interface {
	EmitEvent(event InteractionEvent)
}

// NopSoundPlayer discards every Play call.
type NopSoundPlayer struct{}

// Play does nothing.
func (NopSoundPlayer) Play(Handle) {}

// NameLoader hands out sequential handles per distinct name without touching
// any files. It backs tests and headless runs.
type NameLoader struct {
	names map[string]Handle
	order []string
}

// Load returns the handle for name, allocating one on first use.
func (l *NameLoader) Load(name string) (Handle, error) {
	if h, ok := l.names[name]; ok {
		return h, nil
	}
	if l.names == nil {
		l.names = make(map[string]Handle)
	}
	l.order = append(l.order, name)
	h := Handle(len(l.order))
	l.names[name] = h
	return h, nil
}

// Name returns the asset name behind h, or "" if h was not issued by l.
func (l *NameLoader) Name(h Handle) string {
	if h == NoHandle || int(h) > len(l.order) {
		return ""
	}
	return l.order[h-1]
}
