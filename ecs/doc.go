// Package ecs provides ECS adapters for trashdesk's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges trashdesk
// interaction events (grab, drag, drop, trash) into a [Donburi] world as
// typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
