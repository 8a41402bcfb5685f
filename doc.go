// Package trashdesk is a small desktop simulation: a surface with a handful of
// draggable icons and a trash bin. Drop an icon on the trash to delete it.
//
// The package holds the engine-independent core. Rendering, audio, asset
// decoding and input polling live in the host package, which drives the core
// from an [ebiten.Game].
//
// # Lifecycle
//
// Build the scene once, then step it once per frame:
//
//	rng := rand.New(rand.NewPCG(seed, seed))
//	scene, err := trashdesk.NewScene(cfg, rng, assets, sound)
//	// each frame:
//	scene.Update(input)
//
// [Scene.Update] reads an [InputSnapshot] from the [InputSource] (or from the
// injected input queue, when one is pending) and hands it to [Scene.Step].
//
// # Coordinates
//
// Device coordinates have their origin at the top-left of the window with Y
// pointing down. Scene coordinates have their origin at the window center with
// Y pointing up. The [Camera] converts between the two.
//
// # Interaction
//
// Pressing the primary button over an icon picks it up; the icon then follows
// the cursor, keeping the offset at which it was grabbed. Releasing over the
// trash destroys the icon; releasing anywhere else leaves it where it was
// dropped. At most one icon is held at a time.
//
// Interaction events can be observed with [Scene.OnGrab], [Scene.OnDrag],
// [Scene.OnDrop] and [Scene.OnTrash], or forwarded to an ECS through
// [Scene.SetEventStore] (see the ecs package for a [Donburi] adapter).
//
// [ebiten.Game]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#Game
// [Donburi]: https://github.com/yohamta/donburi
package trashdesk
