package host

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const hudRefresh = 0.5 // seconds

// hud shows the remaining icon count and, in debug mode, FPS and TPS. The
// text is rebuilt at most every hudRefresh seconds.
type hud struct {
	debug   bool
	img     *ebiten.Image
	elapsed float64
	icons   int
	text    string
}

func newHUD(debug bool) *hud {
	h := &hud{debug: debug, icons: -1}
	if debug {
		// 100x48 fits "icons: 9\nFPS: 60.0\nTPS: 60.0"
		h.img = ebiten.NewImage(100, 48)
	}
	return h
}

func (h *hud) update(dt float64, icons int) {
	h.elapsed += dt
	if icons == h.icons && h.elapsed < hudRefresh {
		return
	}
	h.elapsed = 0
	h.icons = icons
	h.text = hudText(icons, h.debug, ebiten.ActualFPS(), ebiten.ActualTPS())

	if h.img != nil {
		h.img.Clear()
		h.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(h.img, h.text)
	}
}

func (h *hud) draw(screen *ebiten.Image) {
	if h.img != nil {
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(4, 4)
		screen.DrawImage(h.img, &op)
		return
	}
	ebitenutil.DebugPrintAt(screen, h.text, 4, 4)
}

func hudText(icons int, debug bool, fps, tps float64) string {
	if !debug {
		return fmt.Sprintf("icons: %d", icons)
	}
	return fmt.Sprintf("icons: %d\nFPS: %.1f\nTPS: %.1f", icons, fps, tps)
}
