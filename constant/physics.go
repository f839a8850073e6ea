package constant

import "github.com/lixenwraith/starfall/vmath"

// Pre-computed Q8.8 velocity constants
// Initialized once, used by systems instead of repeated shifts at fire
// sites. All speeds are pixels per frame; negative Y is upward.
var (
	// Player weapon muzzle velocities (Q8.8)
	SpeedSingleVY = vmath.FromInt(-4)
	SpeedSpreadVY = vmath.FromInt(-3)
	SpeedSpreadVX = vmath.FromInt(1)
	SpeedLaserVY  = vmath.FromInt(-2)

	// Enemy bullet velocities (Q8.8)
	SpeedEnemyVY = vmath.FromInt(2)

	// SpeedEnemyAimed is the total aimed-shot magnitude, 1.5 px/frame
	SpeedEnemyAimed = vmath.FromInt(3) / 2

	// HalfSpeedAimed feeds the reciprocal-table aim math, which doubles
	// its result
	HalfSpeedAimed = SpeedEnemyAimed >> 1

	// Side-entry lateral velocity for linear enemies, 1.5 px/frame
	SpeedSideEntry = vmath.FromInt(3) / 2

	// Hover strafe speed (Q8.8)
	SpeedHoverStrafe = vmath.FromInt(1)

	// SwoopDecel is the lateral deceleration step for curved side
	// entries, 0.25 px/frame every 8 frames
	SwoopDecel = int32(vmath.Scale / 4)
)

// Hover pattern geometry (whole pixels)
const (
	// HoverTargetY is where heavies park before strafing
	HoverTargetY = 60

	// Strafe bounce limits
	HoverMinX = 16
	HoverMaxX = 224
)

// Chase pattern tuning (whole pixels)
const (
	// ChaseDeadzone stops horizontal tracking when roughly aligned,
	// preventing jitter
	ChaseDeadzone = 4

	// SwoopStartFrames delays lateral deceleration after spawn
	SwoopStartFrames = 30
)
