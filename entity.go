package trashdesk

// Icon is a draggable desktop icon. IDs start at 1 and are never reused.
type Icon struct {
	ID int
	// Pos is the icon center in scene space.
	Pos Vec2
	// Variant indexes Config.IconArt.
	Variant int
	// Texture is the handle loaded for the variant's artwork.
	Texture Handle

	held       bool
	grabOffset Vec2
}

// Held reports whether the icon is currently being dragged.
func (i *Icon) Held() bool {
	return i.held
}

// GrabOffset returns the cursor offset captured when the icon was picked up.
// It is only meaningful while Held is true.
func (i *Icon) GrabOffset() Vec2 {
	if !i.held {
		return Vec2{}
	}
	return i.grabOffset
}

// TrashBin is the single drop target. It never moves and cannot be dragged.
type TrashBin struct {
	Pos     Vec2
	Texture Handle
	// Scale is a draw-only multiplier, bumped when an icon is trashed. It
	// does not change the drop radius.
	Scale float64
}

// Background is the desktop surface, centered on the scene origin.
type Background struct {
	Bounds Rect
	Color  Color
}
