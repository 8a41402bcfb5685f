package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/trashdesk"
)

// EbitenInput polls the left mouse button and cursor once per tick.
// Coordinates are in layout space, which matches the desktop size.
type EbitenInput struct {
	width, height int
}

// NewEbitenInput returns an input source for a width x height layout.
func NewEbitenInput(width, height int) *EbitenInput {
	return &EbitenInput{width: width, height: height}
}

// Snapshot implements trashdesk.InputSource.
func (in *EbitenInput) Snapshot() trashdesk.InputSnapshot {
	mx, my := ebiten.CursorPosition()
	return trashdesk.InputSnapshot{
		X:         float64(mx),
		Y:         float64(my),
		HasCursor: inWindow(mx, my, in.width, in.height),
		Button: buttonTransition(
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
			inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		),
	}
}

func inWindow(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}

// buttonTransition folds the three button queries into one transition. A
// press and release inside the same tick reports the release so no icon is
// left held.
func buttonTransition(justPressed, justReleased, pressed bool) trashdesk.ButtonTransition {
	switch {
	case justPressed && pressed:
		return trashdesk.ButtonJustPressed
	case justReleased, justPressed:
		return trashdesk.ButtonJustReleased
	case pressed:
		return trashdesk.ButtonHeld
	default:
		return trashdesk.ButtonIdle
	}
}
