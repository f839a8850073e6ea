package constant

import "github.com/lixenwraith/starfall/core"

// --- Pool Capacities ---
// Pools are fixed arrays sized for the worst frame, never resized.
// The bullet pool is partitioned by index: player bullets occupy the low
// region, enemy bullets the high region.
const (
	// MaxPlayerBullets is the player region size, bullet indices [0, 16)
	MaxPlayerBullets = 16

	// MaxEnemyBullets is the enemy region size, bullet indices [16, 24)
	MaxEnemyBullets = 8

	// MaxBullets is the total bullet pool capacity
	MaxBullets = MaxPlayerBullets + MaxEnemyBullets

	// MaxEnemies is the enemy pool capacity
	MaxEnemies = 8
)

// --- Sprite Dimensions (logical pixels) ---
const (
	PlayerSpriteSize = 32
	EnemySpriteSize  = 32
	BulletSpriteSize = 16
)

// --- Hitboxes ---
// Hitboxes are inset from the sprite box so that visual near-misses do
// not register as hits.
var (
	// PlayerHitbox is the 16x16 cockpit area of the 32x32 ship
	PlayerHitbox = core.Hitbox{OffX: 8, OffY: 8, Width: 16, Height: 16}

	// EnemyHitbox is the 24x24 body area of the 32x32 sprite
	EnemyHitbox = core.Hitbox{OffX: 4, OffY: 4, Width: 24, Height: 24}

	// BulletHitbox is the 8x8 core of the 16x16 projectile
	BulletHitbox = core.Hitbox{OffX: 4, OffY: 4, Width: 8, Height: 8}

	// LaserHitbox is the larger 12x12 impact area for laser shots
	LaserHitbox = core.Hitbox{OffX: 2, OffY: 2, Width: 12, Height: 12}

	// GrazeHitbox extends the player hitbox by 6px per side for
	// near-miss detection
	GrazeHitbox = core.Hitbox{OffX: 2, OffY: 2, Width: 28, Height: 28}
)

// --- Culling Bounds (logical pixels) ---
// Bullets are removed a sprite-width past the playfield edge; enemies get
// wider margins so formations can enter fully off-screen.
const (
	BulletCullMinX = -16
	BulletCullMaxX = ScreenWidth + 16
	BulletCullMinY = -16
	BulletCullMaxY = ScreenHeight + 16

	EnemyCullMinX = -48
	EnemyCullMaxX = ScreenWidth + 32

	// EnemyCullMinY sits below the deepest formation spawn row (-80,
	// the third hazard drifter) so trailing wave members enter the
	// field instead of being culled on their first frame
	EnemyCullMinY = -96
	EnemyCullMaxY = ScreenHeight + 16
)

// --- Player Movement ---
const (
	// PlayerStartX centers the 32px ship horizontally
	PlayerStartX = (ScreenWidth - PlayerSpriteSize) / 2

	// PlayerStartY places the ship in the lower quarter
	PlayerStartY = 176

	// PlayerSpeedNormal is the per-axis movement in pixels per frame
	PlayerSpeedNormal = 2

	// PlayerSpeedFocus is the slow precise-dodging speed
	PlayerSpeedFocus = 1

	// Ship position clamp range, accounting for sprite size and HUD band
	PlayerMinX = 0
	PlayerMaxX = ScreenWidth - PlayerSpriteSize
	PlayerMinY = HUDReserve
	PlayerMaxY = ScreenHeight - PlayerSpriteSize
)
