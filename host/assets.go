package host

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/trashdesk"
)

//go:embed assets/images/*.png assets/sounds/*.wav
var embedded embed.FS

// Assets resolves asset names to handles. PNG files become textures, WAV
// files are kept as encoded bytes for the audio backends. Each name is read
// and decoded once.
type Assets struct {
	fsys   fs.FS
	names  map[string]trashdesk.Handle
	images map[trashdesk.Handle]*ebiten.Image
	sounds map[trashdesk.Handle][]byte
	next   trashdesk.Handle
}

// NewAssets returns a loader over the embedded artwork and sounds.
func NewAssets() *Assets {
	return NewAssetsFS(embedded)
}

// NewAssetsFS returns a loader over fsys. Images are looked up under
// assets/images, sounds under assets/sounds.
func NewAssetsFS(fsys fs.FS) *Assets {
	return &Assets{
		fsys:   fsys,
		names:  make(map[string]trashdesk.Handle),
		images: make(map[trashdesk.Handle]*ebiten.Image),
		sounds: make(map[trashdesk.Handle][]byte),
	}
}

// Load implements trashdesk.AssetLoader.
func (a *Assets) Load(name string) (trashdesk.Handle, error) {
	if h, ok := a.names[name]; ok {
		return h, nil
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		data, err := fs.ReadFile(a.fsys, "assets/images/"+name)
		if err != nil {
			return trashdesk.NoHandle, fmt.Errorf("read image %q: %w", name, err)
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return trashdesk.NoHandle, fmt.Errorf("decode image %q: %w", name, err)
		}
		h := a.issue(name)
		a.images[h] = ebiten.NewImageFromImage(img)
		return h, nil
	case ".wav":
		data, err := fs.ReadFile(a.fsys, "assets/sounds/"+name)
		if err != nil {
			return trashdesk.NoHandle, fmt.Errorf("read sound %q: %w", name, err)
		}
		h := a.issue(name)
		a.sounds[h] = data
		return h, nil
	default:
		return trashdesk.NoHandle, fmt.Errorf("asset %q: unsupported type", name)
	}
}

func (a *Assets) issue(name string) trashdesk.Handle {
	a.next++
	a.names[name] = a.next
	return a.next
}

// Image returns the texture for h, or nil.
func (a *Assets) Image(h trashdesk.Handle) *ebiten.Image {
	return a.images[h]
}

// Sound returns the encoded WAV bytes for h, or nil.
func (a *Assets) Sound(h trashdesk.Handle) []byte {
	return a.sounds[h]
}
