package trashdesk

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Default desktop geometry.
const (
	DefaultWidth    = 700
	DefaultHeight   = 500
	DefaultIconSize = 50
	DefaultPadding  = 50
	DefaultMinIcons = 1
	DefaultMaxIcons = 10 // exclusive
)

// Config holds the desktop settings. The zero value is not usable; start from
// DefaultConfig and override fields, or load a YAML file with LoadConfig.
type Config struct {
	// Width and Height are the desktop surface size in scene units. The
	// window is created at the same size.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// IconSize is the side of an icon's square artwork. The hit radius of
	// icons and of the trash is IconSize/2.
	IconSize float64 `yaml:"icon_size"`
	// Padding keeps spawned icons away from the desktop edges.
	Padding float64 `yaml:"padding"`

	// MinIcons and MaxIcons bound the random icon count: [MinIcons, MaxIcons).
	MinIcons int `yaml:"min_icons"`
	MaxIcons int `yaml:"max_icons"`
	// IconCount, when positive, replaces the random icon count. It must
	// still fall in [MinIcons, MaxIcons).
	IconCount int `yaml:"icon_count"`

	// TrashPos, when set, replaces the default trash position (bottom-left
	// corner, inset by Padding).
	TrashPos *Vec2 `yaml:"trash_pos"`

	// IconArt lists the artwork variants an icon may be drawn with.
	IconArt []string `yaml:"icon_art"`
	// TrashArt is the trash bin artwork.
	TrashArt string `yaml:"trash_art"`
	// ClickSound is played when an icon is picked up.
	ClickSound string `yaml:"click_sound"`

	// Seed seeds the PRNG. Zero means "pick one at startup".
	Seed uint64 `yaml:"seed"`
	// Scale multiplies the window size on screen.
	Scale float64 `yaml:"scale"`
}

// DefaultConfig returns the stock desktop: 700x500, 50 px icons, one to nine
// icons, trash in the bottom-left corner.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		IconSize:   DefaultIconSize,
		Padding:    DefaultPadding,
		MinIcons:   DefaultMinIcons,
		MaxIcons:   DefaultMaxIcons,
		IconArt:    []string{"telegram.png", "youtube.png", "snapchat.png"},
		TrashArt:   "trash-empty.png",
		ClickSound: "click.wav",
		Scale:      1,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the geometry and icon count range.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: desktop size %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.IconSize <= 0:
		return fmt.Errorf("%w: icon size %v", ErrInvalidConfig, c.IconSize)
	case c.Padding < 0 || 2*c.Padding >= c.Width || 2*c.Padding >= c.Height:
		return fmt.Errorf("%w: padding %v does not fit %vx%v", ErrInvalidConfig, c.Padding, c.Width, c.Height)
	case c.MinIcons < 1 || c.MaxIcons <= c.MinIcons:
		return fmt.Errorf("%w: icon range [%d, %d)", ErrInvalidConfig, c.MinIcons, c.MaxIcons)
	case c.IconCount < 0 || (c.IconCount > 0 && (c.IconCount < c.MinIcons || c.IconCount >= c.MaxIcons)):
		return fmt.Errorf("%w: icon count %d outside [%d, %d)", ErrInvalidConfig, c.IconCount, c.MinIcons, c.MaxIcons)
	case len(c.IconArt) == 0:
		return fmt.Errorf("%w: no icon artwork", ErrInvalidConfig)
	case c.Scale < 0:
		return fmt.Errorf("%w: scale %v", ErrInvalidConfig, c.Scale)
	}
	return nil
}

// Bounds returns the desktop surface in scene space, centered on the origin.
func (c Config) Bounds() Rect {
	return Rect{X: -c.Width / 2, Y: -c.Height / 2, Width: c.Width, Height: c.Height}
}

// SpawnArea is the region icon centers are placed in: Bounds shrunk by
// Padding on every side.
func (c Config) SpawnArea() Rect {
	return Rect{
		X:      -c.Width/2 + c.Padding,
		Y:      -c.Height/2 + c.Padding,
		Width:  c.Width - 2*c.Padding,
		Height: c.Height - 2*c.Padding,
	}
}

// HitRadius is the radius used for both icon picking and trash drops.
func (c Config) HitRadius() float64 {
	return c.IconSize / 2
}

// DefaultTrashPos is the trash position used when Config.TrashPos is nil:
// the bottom-left corner, inset by the padding plus half an icon.
func (c Config) DefaultTrashPos() Vec2 {
	return Vec2{
		X: -c.Width/2 + c.Padding + c.IconSize/2,
		Y: -c.Height/2 + c.Padding + c.IconSize/2,
	}
}
