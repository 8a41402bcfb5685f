package host

import (
	"image"
	"image/color"
	"math"
	"testing"
	"testing/fstest"

	"github.com/phanxgames/trashdesk"
)

func TestButtonTransition(t *testing.T) {
	tests := []struct {
		name                               string
		justPressed, justReleased, pressed bool
		want                               trashdesk.ButtonTransition
	}{
		{"idle", false, false, false, trashdesk.ButtonIdle},
		{"press", true, false, true, trashdesk.ButtonJustPressed},
		{"held", false, false, true, trashdesk.ButtonHeld},
		{"release", false, true, false, trashdesk.ButtonJustReleased},
		{"click within one tick", true, true, false, trashdesk.ButtonJustReleased},
		{"release then press within one tick", true, true, true, trashdesk.ButtonJustPressed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buttonTransition(tt.justPressed, tt.justReleased, tt.pressed)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInWindow(t *testing.T) {
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{699, 499, true},
		{700, 10, false},
		{10, 500, false},
		{-1, 10, false},
		{10, -1, false},
	}
	for _, tt := range tests {
		if got := inWindow(tt.x, tt.y, 700, 500); got != tt.want {
			t.Errorf("inWindow(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestHUDText(t *testing.T) {
	if got := hudText(3, false, 60, 60); got != "icons: 3" {
		t.Errorf("got %q", got)
	}
	if got := hudText(0, true, 60, 60); got != "icons: 0\nFPS: 60.0\nTPS: 60.0" {
		t.Errorf("got %q", got)
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"before", "before"},
		{"  after drop ", "after_drop"},
		{"a/b\\c", "a_b_c"},
		{"v1.2-final", "v1.2-final"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		64, 32, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	unpremultiply(pix)
	want := []byte{127, 63, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("pix = %v, want %v", pix, want)
		}
	}
}

func TestToRGBA(t *testing.T) {
	if got := toRGBA(trashdesk.ColorWhite); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("white = %v", got)
	}
	if got := toRGBA(trashdesk.ColorTrash); got != (color.RGBA{0, 0, 102, 255}) {
		t.Errorf("trash = %v", got)
	}
	if got := toRGBA(trashdesk.Color{R: 1, A: 0.5}); got != (color.RGBA{128, 0, 0, 128}) {
		t.Errorf("half red = %v", got)
	}
}

func TestAssetsLoadSound(t *testing.T) {
	a := NewAssets()
	h, err := a.Load("click.wav")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if h == trashdesk.NoHandle {
		t.Fatal("got NoHandle")
	}
	if len(a.Sound(h)) == 0 {
		t.Error("sound bytes missing")
	}
	again, err := a.Load("click.wav")
	if err != nil || again != h {
		t.Errorf("second Load = %d, %v; want %d", again, err, h)
	}
}

func TestAssetsLoadErrors(t *testing.T) {
	a := NewAssetsFS(fstest.MapFS{
		"assets/images/broken.png": {Data: []byte("not a png")},
	})
	for _, name := range []string{"missing.png", "missing.wav", "broken.png", "notes.txt"} {
		if _, err := a.Load(name); err == nil {
			t.Errorf("Load(%q): expected error", name)
		}
	}
}

func TestDecodeWAV(t *testing.T) {
	a := NewAssets()
	h, err := a.Load("click.wav")
	if err != nil {
		t.Fatal(err)
	}
	buf, err := decodeWAV(a.Sound(h))
	if err != nil {
		t.Fatalf("decodeWAV: %v", err)
	}
	if buf.Format().SampleRate != beepRate {
		t.Errorf("rate = %d, want %d", buf.Format().SampleRate, beepRate)
	}
	if buf.Len() == 0 {
		t.Error("empty buffer")
	}

	if _, err := decodeWAV([]byte("RIFF")); err == nil {
		t.Error("expected error for truncated wav")
	}
}

func TestBeepAudioPlayBeforeInitialize(t *testing.T) {
	b := NewBeepAudio(NewAssets(), nil)
	b.Play(1) // must not touch the speaker or the nil logger
	b.Close()
}

func TestSpriteOptions(t *testing.T) {
	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-3 }

	op := spriteOptions(image.Rect(0, 0, 50, 50), 100, 200, 65, trashdesk.ColorTrash)
	x0, y0 := op.GeoM.Apply(0, 0)
	x1, y1 := op.GeoM.Apply(50, 50)
	if !near(x0, 67.5) || !near(y0, 167.5) || !near(x1, 132.5) || !near(y1, 232.5) {
		t.Errorf("sprite spans (%v,%v)-(%v,%v), want (67.5,167.5)-(132.5,232.5)", x0, y0, x1, y1)
	}
	cs := op.ColorScale
	if !near(float64(cs.R()), 0) || !near(float64(cs.G()), 0) || !near(float64(cs.B()), 0.4) || !near(float64(cs.A()), 1) {
		t.Errorf("trash tint = (%v,%v,%v,%v), want (0,0,0.4,1)", cs.R(), cs.G(), cs.B(), cs.A())
	}

	plain := spriteOptions(image.Rect(0, 0, 50, 50), 0, 0, 50, trashdesk.ColorWhite)
	cs = plain.ColorScale
	if cs.R() != 1 || cs.G() != 1 || cs.B() != 1 || cs.A() != 1 {
		t.Errorf("icon tint = (%v,%v,%v,%v), want identity", cs.R(), cs.G(), cs.B(), cs.A())
	}
}
