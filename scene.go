package trashdesk

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
)

const defaultTPS = 60

// Scene owns the desktop state: the icon arena, the trash bin, the camera
// and the input plumbing. All of it is mutated from the frame loop only.
type Scene struct {
	cfg     Config
	desktop Desktop
	camera  *Camera
	logger  *slog.Logger
	debug   bool

	background Background
	trash      TrashBin
	// icons is indexed by ID-1. Destroyed icons leave a nil slot so IDs
	// stay stable.
	icons  []*Icon
	live   int
	heldID int // 0 when nothing is held

	sound      SoundPlayer
	clickSound Handle

	store    EventStore
	handlers handlerRegistry
	tweens   []*TweenGroup
	iconBuf  []*Icon

	// TPS is the number of Update calls per second, used to advance tweens.
	TPS int

	// Injected input and scripted runs.
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene builds the desktop: background, a random number of icons at
// random positions with random artwork, and the trash bin. Icons may overlap.
// rng drives every random choice; pass a seeded one for reproducible layouts.
func NewScene(cfg Config, rng *rand.Rand, assets AssetLoader, sound SoundPlayer) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sound == nil {
		sound = NopSoundPlayer{}
	}

	art := make([]Handle, len(cfg.IconArt))
	for i, name := range cfg.IconArt {
		h, err := assets.Load(name)
		if err != nil {
			return nil, fmt.Errorf("load asset %q: %w", name, err)
		}
		art[i] = h
	}
	var trashArt Handle
	if cfg.TrashArt != "" {
		h, err := assets.Load(cfg.TrashArt)
		if err != nil {
			return nil, fmt.Errorf("load asset %q: %w", cfg.TrashArt, err)
		}
		trashArt = h
	}
	var click Handle
	if cfg.ClickSound != "" {
		h, err := assets.Load(cfg.ClickSound)
		if err != nil {
			return nil, fmt.Errorf("load asset %q: %w", cfg.ClickSound, err)
		}
		click = h
	}

	desktop := NewDesktop(cfg, rng)
	s := &Scene{
		cfg:        cfg,
		desktop:    desktop,
		camera:     NewCamera(cfg.Width, cfg.Height),
		logger:     slog.Default(),
		background: Background{Bounds: cfg.Bounds(), Color: ColorWhite},
		trash:      TrashBin{Pos: desktop.TrashPos, Texture: trashArt, Scale: 1},
		sound:      sound,
		clickSound: click,
		TPS:        defaultTPS,
	}

	area := cfg.SpawnArea()
	s.icons = make([]*Icon, desktop.IconCount)
	for i := range s.icons {
		variant := rng.IntN(len(art))
		s.icons[i] = &Icon{
			ID: i + 1,
			Pos: Vec2{
				X: area.X + rng.Float64()*area.Width,
				Y: area.Y + rng.Float64()*area.Height,
			},
			Variant: variant,
			Texture: art[variant],
		}
	}
	s.live = len(s.icons)
	return s, nil
}

// Config returns the configuration the scene was built with.
func (s *Scene) Config() Config {
	return s.cfg
}

// Desktop returns the startup layout decision.
func (s *Scene) Desktop() Desktop {
	return s.desktop
}

// Camera returns the scene camera used for device to scene conversion.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Background returns the desktop surface.
func (s *Scene) Background() Background {
	return s.background
}

// Trash returns the trash bin.
func (s *Scene) Trash() TrashBin {
	return s.trash
}

// Icons returns the live icons in ascending ID order. The returned slice is
// reused by the next call and MUST NOT be retained or mutated.
func (s *Scene) Icons() []*Icon {
	s.iconBuf = s.iconBuf[:0]
	for _, icon := range s.icons {
		if icon != nil {
			s.iconBuf = append(s.iconBuf, icon)
		}
	}
	return s.iconBuf
}

// Icon returns the live icon with the given ID.
func (s *Scene) Icon(id int) (*Icon, bool) {
	if id < 1 || id > len(s.icons) || s.icons[id-1] == nil {
		return nil, false
	}
	return s.icons[id-1], true
}

// IconCount returns the number of icons not yet trashed.
func (s *Scene) IconCount() int {
	return s.live
}

// Held returns the icon currently being dragged, if any.
func (s *Scene) Held() (*Icon, bool) {
	icon := s.heldIcon()
	return icon, icon != nil
}

// heldIcon resolves heldID. A held ID that points at a missing or idle icon
// means the single-held invariant was broken somewhere; that is a bug, not
// a recoverable state.
func (s *Scene) heldIcon() *Icon {
	if s.heldID == 0 {
		return nil
	}
	icon, ok := s.Icon(s.heldID)
	if !ok || !icon.held {
		panic(fmt.Sprintf("trashdesk: held icon %d is not a live held icon", s.heldID))
	}
	return icon
}

// destroy removes an icon from the arena and bumps the trash.
func (s *Scene) destroy(icon *Icon) {
	s.icons[icon.ID-1] = nil
	s.live--
	s.bumpTrash()
}

// SetEventStore sets the optional ECS bridge.
func (s *Scene) SetEventStore(store EventStore) {
	s.store = store
}

// SetLogger replaces the scene logger. A nil logger restores slog.Default.
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.logger = l
}

// SetDebugMode enables or disables per-frame timing logs.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update runs one frame: the scripted runner (if any), trash tweens, and the
// interaction state machine. Injected input takes priority over src; src may
// be nil when only injected input is used.
func (s *Scene) Update(src InputSource) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.updateTweens()

	if !s.processInjectedInput() && src != nil {
		s.Step(src.Snapshot())
	}

	if s.debug {
		s.debugLog(frameStats{
			stepTime: time.Since(t0),
			icons:    s.live,
			held:     s.heldID,
			tweens:   len(s.tweens),
		})
	}
}

// Screenshot queues a labeled screenshot. The host captures queued labels at
// the end of its next Draw.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// TakeScreenshots returns and clears the queued screenshot labels.
func (s *Scene) TakeScreenshots() []string {
	if len(s.screenshotQueue) == 0 {
		return nil
	}
	labels := s.screenshotQueue
	s.screenshotQueue = nil
	return labels
}
