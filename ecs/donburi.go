package ecs

import (
	"github.com/phanxgames/trashdesk"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for trashdesk interaction
// events. Subscribe to this in your ECS systems to receive grab, drag, drop
// and trash events.
var InteractionEventType = events.NewEventType[trashdesk.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) trashdesk.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event trashdesk.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// Tally counts interaction events per type. Register it with Subscribe and
// read the counters after ProcessEvents.
type Tally struct {
	Grabs   int
	Drags   int
	Drops   int
	Trashed int
	// LastTrashed is the ID of the most recently trashed icon, 0 if none.
	LastTrashed int
}

// Subscribe registers the tally as a listener on world.
func (t *Tally) Subscribe(world donburi.World) {
	InteractionEventType.Subscribe(world, t.observe)
}

func (t *Tally) observe(_ donburi.World, e trashdesk.InteractionEvent) {
	switch e.Type {
	case trashdesk.EventGrab:
		t.Grabs++
	case trashdesk.EventDrag:
		t.Drags++
	case trashdesk.EventDrop:
		t.Drops++
	case trashdesk.EventTrash:
		t.Trashed++
		t.LastTrashed = e.IconID
	}
}
