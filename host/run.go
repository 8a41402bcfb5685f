package host

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig sets up the window for Run.
type RunConfig struct {
	Title string
	// Scale multiplies the logical desktop size to get the window size.
	Scale float64
	// TPS overrides the tick rate. Zero keeps Ebitengine's default.
	TPS int
}

// Run opens a window and blocks until it is closed or a script finishes.
// A finished script is not an error.
func Run(g *Game, cfg RunConfig) error {
	w, h := g.Layout(0, 0)
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
		g.scene.TPS = cfg.TPS
	}

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
