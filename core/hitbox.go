package core

// Hitbox is a rectangular collision region in whole pixels, offset from
// the owning entity's top-left corner. Sprites are padded, so hitboxes
// are smaller than the sprite and shifted inward.
type Hitbox struct {
	OffX, OffY    int
	Width, Height int
}

// Overlap reports whether two hitboxes anchored at the given pixel
// positions intersect. Intervals are open on both ends: rectangles that
// merely share an edge do not overlap.
func Overlap(ax, ay int, a Hitbox, bx, by int, b Hitbox) bool {
	al := ax + a.OffX
	at := ay + a.OffY
	ar := al + a.Width
	ab := at + a.Height

	bl := bx + b.OffX
	bt := by + b.OffY
	br := bl + b.Width
	bb := bt + b.Height

	if ar <= bl || al >= br {
		return false
	}
	if ab <= bt || at >= bb {
		return false
	}
	return true
}
