// Package host runs a trashdesk.Scene inside an Ebitengine window. It owns
// everything the core leaves abstract: textures, audio, mouse polling and
// drawing.
package host

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/trashdesk"
)

// Game implements ebiten.Game for one desktop.
type Game struct {
	scene  *trashdesk.Scene
	assets *Assets
	input  trashdesk.InputSource
	logger *slog.Logger
	hud    *hud

	// World, when set, has its event queues drained after every Update.
	World donburi.World
	// Runner, when set, ends the game one frame after it finishes.
	Runner *trashdesk.TestRunner
	// ScreenshotDir receives PNGs for labels queued with Scene.Screenshot.
	ScreenshotDir string

	quitting bool
}

// NewGame wraps scene. assets must be the loader the scene was built with.
func NewGame(scene *trashdesk.Scene, assets *Assets, logger *slog.Logger, debug bool) *Game {
	cfg := scene.Config()
	return &Game{
		scene:         scene,
		assets:        assets,
		input:         NewEbitenInput(int(cfg.Width), int(cfg.Height)),
		logger:        logger,
		hud:           newHUD(debug),
		ScreenshotDir: "screenshots",
	}
}

// Update advances the scene by one tick.
func (g *Game) Update() error {
	if g.quitting {
		return ebiten.Termination
	}

	g.scene.Update(g.input)
	if g.World != nil {
		events.ProcessAllEvents(g.World)
	}
	g.hud.update(1/float64(ebiten.TPS()), g.scene.IconCount())

	if g.Runner != nil && g.Runner.Done() {
		g.logger.Info("script finished", "icons", g.scene.IconCount())
		g.quitting = true
	}
	return nil
}

// Draw paints the background, the trash, the idle icons and finally the held
// icon so it stays above everything it is dragged across.
func (g *Game) Draw(screen *ebiten.Image) {
	bg := g.scene.Background()
	screen.Fill(toRGBA(bg.Color))

	cfg := g.scene.Config()
	cam := g.scene.Camera()

	trash := g.scene.Trash()
	g.drawSprite(screen, cam, trash.Pos, trash.Texture, cfg.IconSize*trash.Scale, trashdesk.ColorTrash)

	var held *trashdesk.Icon
	for _, icon := range g.scene.Icons() {
		if icon.Held() {
			held = icon
			continue
		}
		g.drawSprite(screen, cam, icon.Pos, icon.Texture, cfg.IconSize, trashdesk.ColorWhite)
	}
	if held != nil {
		g.drawSprite(screen, cam, held.Pos, held.Texture, cfg.IconSize, trashdesk.ColorWhite)
	}

	g.hud.draw(screen)
	g.flushScreenshots(screen)
}

// Layout keeps the logical screen at the desktop size regardless of the
// window size.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.scene.Config()
	return int(cfg.Width), int(cfg.Height)
}

// drawSprite draws tex centered on the scene point pos, scaled to a size x
// size square and multiplied by tint. Without a texture it fills the square
// with tint.
func (g *Game) drawSprite(screen *ebiten.Image, cam *trashdesk.Camera, pos trashdesk.Vec2, tex trashdesk.Handle, size float64, tint trashdesk.Color) {
	sx, sy := cam.WorldToScreen(pos.X, pos.Y)
	img := g.assets.Image(tex)
	if img == nil {
		vector.DrawFilledRect(screen,
			float32(sx-size/2), float32(sy-size/2), float32(size), float32(size),
			toRGBA(tint), false)
		return
	}
	op := spriteOptions(img.Bounds(), sx, sy, size, tint)
	screen.DrawImage(img, &op)
}

// spriteOptions centers an image of bounds b on (sx, sy), scales it to size
// and applies tint.
func spriteOptions(b image.Rectangle, sx, sy, size float64, tint trashdesk.Color) ebiten.DrawImageOptions {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	op.GeoM.Translate(sx, sy)
	if tint != trashdesk.ColorWhite {
		op.ColorScale.ScaleWithColor(toRGBA(tint))
	}
	op.Filter = ebiten.FilterLinear
	return op
}

func toRGBA(c trashdesk.Color) color.RGBA {
	// color.RGBA is premultiplied.
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
