package ecs

import (
	"testing"

	"github.com/phanxgames/trashdesk"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []trashdesk.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e trashdesk.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(trashdesk.InteractionEvent{
		Type:    trashdesk.EventGrab,
		IconID:  4,
		CursorX: 100,
		CursorY: 200,
	})
	store.EmitEvent(trashdesk.InteractionEvent{
		Type:   trashdesk.EventTrash,
		IconID: 4,
	})

	// Events are queued until processed.
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != trashdesk.EventGrab || e0.IconID != 4 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.CursorX != 100 || e0.CursorY != 200 {
		t.Errorf("event 0 cursor: (%v,%v)", e0.CursorX, e0.CursorY)
	}
	if received[1].Type != trashdesk.EventTrash {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_ImplementsEventStore(t *testing.T) {
	world := donburi.NewWorld()
	var store trashdesk.EventStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestTallyFromScene(t *testing.T) {
	world := donburi.NewWorld()
	var tally Tally
	tally.Subscribe(world)

	trash := trashdesk.Vec2{X: -300, Y: -200}
	cfg := trashdesk.DefaultConfig()
	cfg.IconCount = 2
	cfg.TrashPos = &trash
	scene, err := trashdesk.NewScene(cfg, trashdesk.NewRand(1), &trashdesk.NameLoader{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	scene.SetEventStore(NewDonburiStore(world))

	a, _ := scene.Icon(1)
	a.Pos = trashdesk.Vec2{}
	b, _ := scene.Icon(2)
	b.Pos = trashdesk.Vec2{X: 200, Y: 150}

	cam := scene.Camera()
	ax, ay := cam.WorldToScreen(0, 0)
	tx, ty := cam.WorldToScreen(trash.X, trash.Y)
	scene.InjectDrag(ax, ay, tx, ty, 4)
	bx, by := cam.WorldToScreen(200, 150)
	scene.InjectClick(bx, by)
	for scene.PendingInput() > 0 {
		scene.Update(nil)
	}
	events.ProcessAllEvents(world)

	if tally.Grabs != 2 || tally.Drags != 2 || tally.Drops != 1 || tally.Trashed != 1 {
		t.Errorf("tally = %+v, want 2 grabs, 2 drags, 1 drop, 1 trash", tally)
	}
	if tally.LastTrashed != 1 {
		t.Errorf("LastTrashed = %d, want 1", tally.LastTrashed)
	}
}
