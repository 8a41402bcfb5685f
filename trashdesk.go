package trashdesk

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the desktop surface color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTrash tints the trash bin when no artwork is available.
var ColorTrash = Color{0, 0, 0.4, 1}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle. (X, Y) is the corner with the smallest
// coordinates: top-left in device space, bottom-left in scene space.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ButtonTransition is the per-frame state of the primary pointer button.
type ButtonTransition uint8

const (
	ButtonIdle         ButtonTransition = iota // up, and was up last frame
	ButtonJustPressed                          // went down this frame
	ButtonHeld                                 // down, and was down last frame
	ButtonJustReleased                         // went up this frame
)

func (b ButtonTransition) String() string {
	switch b {
	case ButtonIdle:
		return "idle"
	case ButtonJustPressed:
		return "just_pressed"
	case ButtonHeld:
		return "held"
	case ButtonJustReleased:
		return "just_released"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventGrab  EventType = iota // an icon was picked up
	EventDrag                   // a held icon followed the cursor
	EventDrop                   // a held icon was released away from the trash
	EventTrash                  // a held icon was released on the trash and destroyed
)

func (e EventType) String() string {
	switch e {
	case EventGrab:
		return "grab"
	case EventDrag:
		return "drag"
	case EventDrop:
		return "drop"
	case EventTrash:
		return "trash"
	default:
		return "unknown"
	}
}
