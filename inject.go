package trashdesk

// syntheticPointerEvent is one queued frame of fake pointer input in device
// coordinates. It goes through the camera exactly like a live snapshot.
type syntheticPointerEvent struct {
	screenX, screenY float64
	hasCursor        bool
	button           ButtonTransition
}

func (s *Scene) queuePointer(x, y float64, b ButtonTransition) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, hasCursor: true, button: b,
	})
}

// InjectPress queues a frame where the button goes down at (x, y). Each
// Update consumes one queued frame.
func (s *Scene) InjectPress(x, y float64) { s.queuePointer(x, y, ButtonJustPressed) }

// InjectMove queues a frame with the button held at (x, y).
func (s *Scene) InjectMove(x, y float64) { s.queuePointer(x, y, ButtonHeld) }

// InjectRelease queues a frame where the button goes up at (x, y).
func (s *Scene) InjectRelease(x, y float64) { s.queuePointer(x, y, ButtonJustReleased) }

// InjectLeave queues a frame with the pointer outside the window.
func (s *Scene) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{})
}

// InjectClick queues a press and a release at the same point.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at the start point, frames-2 evenly spaced moves
// and a release at the end point. frames is raised to 2 if smaller.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	s.InjectPress(fromX, fromY)
	for i := 1; i < frames-1; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// PendingInput reports how many injected frames are still queued.
func (s *Scene) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput feeds the oldest queued frame to Step. It reports
// false when the queue is empty and live input should be read instead.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	s.injectQueue = s.injectQueue[1:]
	if len(s.injectQueue) == 0 {
		s.injectQueue = nil
	}
	s.Step(InputSnapshot{
		X:         evt.screenX,
		Y:         evt.screenY,
		HasCursor: evt.hasCursor,
		Button:    evt.button,
	})
	return true
}
