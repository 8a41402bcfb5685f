package trashdesk

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenValue(t *testing.T) {
	v := 0.0
	g := TweenValue(&v, 10, 1.0, ease.Linear)

	g.Update(0.5)
	if !approxEqual(v, 5, 0.01) {
		t.Errorf("v = %f, want ~5 at half time", v)
	}
	if g.Done {
		t.Error("should not be done at half time")
	}

	g.Update(0.5)
	if !approxEqual(v, 10, 0.01) {
		t.Errorf("v = %f, want 10 at end", v)
	}
	if !g.Done {
		t.Error("should be done at end")
	}

	// Updates after completion are ignored.
	v = 3
	g.Update(0.5)
	if v != 3 {
		t.Errorf("v = %f, finished group should not write", v)
	}
}

func TestTrashBumpSettles(t *testing.T) {
	s, _ := newTestScene(t, 1, Vec2{-300, -200})
	icon, _ := s.Icon(1)
	icon.Pos = Vec2{-300, -200}

	stepAt(s, Vec2{-300, -200}, ButtonJustPressed)
	stepAt(s, Vec2{-300, -200}, ButtonJustReleased)
	if s.Trash().Scale != trashBumpScale {
		t.Fatalf("Scale = %v, want %v right after trashing", s.Trash().Scale, trashBumpScale)
	}
	if len(s.tweens) != 1 {
		t.Fatalf("tweens = %d, want 1", len(s.tweens))
	}

	for i := 0; i < s.TPS; i++ { // one second, longer than the bump
		s.Update(nil)
	}
	if !approxEqual(s.Trash().Scale, 1, 1e-6) {
		t.Errorf("Scale = %v, want 1 after the bump", s.Trash().Scale)
	}
	if len(s.tweens) != 0 {
		t.Errorf("finished tweens should be dropped, have %d", len(s.tweens))
	}
}

func TestTrashBumpReplacesRunningBump(t *testing.T) {
	s, _ := newTestScene(t, 2, Vec2{-300, -200})
	s.bumpTrash()
	s.Update(nil)
	s.bumpTrash()
	if len(s.tweens) != 1 {
		t.Errorf("tweens = %d, want 1 (replaced)", len(s.tweens))
	}
	if s.Trash().Scale != trashBumpScale {
		t.Errorf("Scale = %v, want %v", s.Trash().Scale, trashBumpScale)
	}
}
