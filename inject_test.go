package trashdesk

import "testing"

func TestInjectDragToTrash(t *testing.T) {
	s, snd := newTestScene(t, 1, Vec2{-300, -200})
	icon, _ := s.Icon(1)
	icon.Pos = Vec2{0, 0}

	fx, fy := deviceOf(s, Vec2{0, 0})
	tx, ty := deviceOf(s, Vec2{-300, -200})
	s.InjectDrag(fx, fy, tx, ty, 6)
	if s.PendingInput() != 6 {
		t.Fatalf("expected 6 queued events, got %d", s.PendingInput())
	}

	// Frame 1: press.
	s.Update(nil)
	if !icon.Held() {
		t.Fatal("icon should be held after the press frame")
	}
	if len(snd.plays) != 1 {
		t.Errorf("click plays = %d, want 1", len(snd.plays))
	}

	for s.PendingInput() > 0 {
		s.Update(nil)
	}
	if _, ok := s.Icon(1); ok {
		t.Error("icon should be trashed at the end of the drag")
	}
}

func TestInjectClickLeavesIconIdle(t *testing.T) {
	s, _ := newTestScene(t, 1, Vec2{-300, -200})
	icon, _ := s.Icon(1)
	icon.Pos = Vec2{40, 40}

	x, y := deviceOf(s, Vec2{50, 45})
	s.InjectClick(x, y)
	s.Update(nil)
	if !icon.Held() {
		t.Fatal("icon should be held after press")
	}
	s.Update(nil)
	if icon.Held() {
		t.Error("icon should be idle after release")
	}
	if icon.Pos != (Vec2{40, 40}) {
		t.Errorf("Pos = %+v, a click should not move the icon", icon.Pos)
	}
}

func TestInjectLeaveFreezes(t *testing.T) {
	s, _ := newTestScene(t, 1, Vec2{-300, -200})
	icon, _ := s.Icon(1)
	icon.Pos = Vec2{0, 0}

	x, y := deviceOf(s, Vec2{0, 0})
	s.InjectPress(x, y)
	s.InjectLeave()
	s.Update(nil)
	s.Update(nil)
	if !icon.Held() || icon.Pos != (Vec2{0, 0}) {
		t.Errorf("held=%v pos=%+v, want held at origin", icon.Held(), icon.Pos)
	}
}

type fixedInput struct {
	snap  InputSnapshot
	calls int
}

func (f *fixedInput) Snapshot() InputSnapshot {
	f.calls++
	return f.snap
}

func TestInjectedInputTakesPriority(t *testing.T) {
	s, _ := newTestScene(t, 1, Vec2{-300, -200})
	src := &fixedInput{snap: InputSnapshot{HasCursor: true}}

	s.InjectLeave()
	s.Update(src)
	if src.calls != 0 {
		t.Errorf("live input read %d times while injected input pending", src.calls)
	}
	s.Update(src)
	if src.calls != 1 {
		t.Errorf("live input read %d times, want 1", src.calls)
	}
}

func TestInjectDrag_MinFrames(t *testing.T) {
	s, _ := newTestScene(t, 1, Vec2{})
	s.InjectDrag(0, 0, 100, 100, 1) // should clamp to 2
	if s.PendingInput() != 2 {
		t.Fatalf("expected 2 queued events (clamped), got %d", s.PendingInput())
	}
}

func TestInjectQueueOrder(t *testing.T) {
	s, _ := newTestScene(t, 1, Vec2{})

	s.InjectPress(10, 20)
	s.InjectMove(30, 40)
	s.InjectRelease(50, 60)

	want := []syntheticPointerEvent{
		{10, 20, true, ButtonJustPressed},
		{30, 40, true, ButtonHeld},
		{50, 60, true, ButtonJustReleased},
	}
	if len(s.injectQueue) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(s.injectQueue))
	}
	for i := range want {
		if s.injectQueue[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, s.injectQueue[i], want[i])
		}
	}
}
