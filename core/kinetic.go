package core

type Kinetic struct {
	// PreciseX and PreciseY are sub-pixel coordinates in Q8.8 format
	PreciseX, PreciseY int32
	// VelX and VelY represent velocity in pixels per frame (Q8.8)
	VelX, VelY int32
}

// Advance integrates one frame of motion. Fractional remainders
// accumulate in the precise coordinates and are never discarded.
func (k *Kinetic) Advance() {
	k.PreciseX += k.VelX
	k.PreciseY += k.VelY
}
