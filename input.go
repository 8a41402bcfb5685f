package trashdesk

// --- Hit testing ---

// HitCircle is a circular hit area in scene coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// InCircle reports whether p lies within r of center, boundary included.
// It is the only collision test used for picking icons and for trash drops.
func InCircle(p, center Vec2, r float64) bool {
	return HitCircle{CenterX: center.X, CenterY: center.Y, Radius: r}.Contains(p.X, p.Y)
}

// --- Pointer snapshots ---

// InputSnapshot is the raw pointer state for one frame, in device coordinates.
// HasCursor is false when the pointer is outside the window.
type InputSnapshot struct {
	X, Y      float64
	HasCursor bool
	Button    ButtonTransition
}

// PointerState is an InputSnapshot converted to scene coordinates.
type PointerState struct {
	Cursor Vec2
	Button ButtonTransition
}

// --- Interaction events ---

// IconContext carries the data passed to interaction callbacks.
type IconContext struct {
	Icon   *Icon
	ID     int
	Cursor Vec2
	// Pos is the icon position after the event was applied.
	Pos Vec2
	// Offset is the grab offset (cursor - icon position at pickup).
	Offset Vec2
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type    EventType
	IconID  int
	CursorX float64
	CursorY float64
	X       float64
	Y       float64
	OffsetX float64
	OffsetY float64
}

// --- Handler registry ---

type iconHandler struct {
	id uint32
	fn func(IconContext)
}

const eventTypeCount = int(EventTrash) + 1

type handlerRegistry struct {
	byType [eventTypeCount][]iconHandler
	nextID uint32
}

func (r *handlerRegistry) add(event EventType, fn func(IconContext)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.byType[event] = append(r.byType[event], iconHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil || int(h.event) >= eventTypeCount {
		return
	}
	// Never compact in place: fire may be ranging over the old slice.
	old := h.reg.byType[h.event]
	for i := range old {
		if old[i].id == h.id {
			kept := make([]iconHandler, 0, len(old)-1)
			kept = append(kept, old[:i]...)
			h.reg.byType[h.event] = append(kept, old[i+1:]...)
			return
		}
	}
}

// OnGrab registers a callback fired when an icon is picked up.
func (s *Scene) OnGrab(fn func(IconContext)) CallbackHandle {
	return s.handlers.add(EventGrab, fn)
}

// OnDrag registers a callback fired each frame a held icon moves.
func (s *Scene) OnDrag(fn func(IconContext)) CallbackHandle {
	return s.handlers.add(EventDrag, fn)
}

// OnDrop registers a callback fired when a held icon is released away from
// the trash.
func (s *Scene) OnDrop(fn func(IconContext)) CallbackHandle {
	return s.handlers.add(EventDrop, fn)
}

// OnTrash registers a callback fired when a held icon is released on the
// trash. The icon has already been removed from the scene when it fires.
func (s *Scene) OnTrash(fn func(IconContext)) CallbackHandle {
	return s.handlers.add(EventTrash, fn)
}

// --- Input processing ---

// toPointerState converts a device snapshot through the scene camera.
func (s *Scene) toPointerState(in InputSnapshot) PointerState {
	wx, wy := s.camera.ScreenToWorld(in.X, in.Y)
	return PointerState{Cursor: Vec2{wx, wy}, Button: in.Button}
}

// Step advances the interaction state machine by one frame. A snapshot
// without a cursor leaves every icon untouched.
func (s *Scene) Step(in InputSnapshot) {
	if !in.HasCursor {
		return
	}
	s.processPointer(s.toPointerState(in))
}

// processPointer runs press, drag and release for one frame.
func (s *Scene) processPointer(ps PointerState) {
	switch ps.Button {
	case ButtonJustPressed:
		s.press(ps.Cursor)
	case ButtonHeld:
		s.drag(ps.Cursor)
	case ButtonJustReleased:
		s.release(ps.Cursor)
	}
}

// press picks up the first idle icon under the cursor, in ascending ID order.
func (s *Scene) press(cursor Vec2) {
	s.logger.Debug("pointer pressed", "x", cursor.X, "y", cursor.Y)
	if s.heldID != 0 {
		return
	}
	r := s.cfg.HitRadius()
	for _, icon := range s.icons {
		if icon == nil || !InCircle(cursor, icon.Pos, r) {
			continue
		}
		icon.held = true
		icon.grabOffset = cursor.Sub(icon.Pos)
		s.heldID = icon.ID
		s.logger.Debug("icon grabbed", "id", icon.ID)
		s.sound.Play(s.clickSound)
		s.fire(EventGrab, icon, cursor)
		return
	}
}

// drag moves the held icon so that it keeps its grab offset to the cursor.
func (s *Scene) drag(cursor Vec2) {
	icon := s.heldIcon()
	if icon == nil {
		return
	}
	pos := cursor.Sub(icon.grabOffset)
	if pos == icon.Pos {
		return
	}
	icon.Pos = pos
	s.fire(EventDrag, icon, cursor)
}

// release drops the held icon: onto the trash (destroying it) or in place.
func (s *Scene) release(cursor Vec2) {
	icon := s.heldIcon()
	if icon == nil {
		return
	}
	s.heldID = 0
	icon.held = false
	if InCircle(cursor, s.trash.Pos, s.cfg.HitRadius()) {
		s.destroy(icon)
		s.logger.Debug("icon trashed", "id", icon.ID, "remaining", s.live)
		s.fire(EventTrash, icon, cursor)
		return
	}
	s.logger.Debug("icon dropped", "id", icon.ID, "x", icon.Pos.X, "y", icon.Pos.Y)
	s.fire(EventDrop, icon, cursor)
}

// --- Event dispatch ---

func (s *Scene) fire(event EventType, icon *Icon, cursor Vec2) {
	ctx := IconContext{
		Icon:   icon,
		ID:     icon.ID,
		Cursor: cursor,
		Pos:    icon.Pos,
		Offset: icon.grabOffset,
	}
	// Handlers added or removed by a handler take effect from the next event.
	for _, h := range s.handlers.byType[event] {
		h.fn(ctx)
	}
	if s.store != nil {
		s.store.EmitEvent(InteractionEvent{
			Type:    event,
			IconID:  icon.ID,
			CursorX: cursor.X,
			CursorY: cursor.Y,
			X:       icon.Pos.X,
			Y:       icon.Pos.Y,
			OffsetX: icon.grabOffset.X,
			OffsetY: icon.grabOffset.Y,
		})
	}
}
