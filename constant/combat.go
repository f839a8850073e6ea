package constant

// --- Weapon Fire Rates (frames between shots) ---
const (
	// FireRateSingle gives ~7.5 shots/sec
	FireRateSingle = 8

	// FireRateSpread gives ~5 shots/sec, three bullets per shot
	FireRateSpread = 12

	// FireRateLaser gives ~4.6 shots/sec
	FireRateLaser = 13
)

// --- Damage Values ---
// Tuned against the enemy HP pools: single is the baseline, spread trades
// per-bullet damage for coverage, laser is a heavy single-target option.
const (
	DamageSingle = 10
	DamageSpread = 6
	DamageLaser  = 25
)

// --- Rapid Fire Momentum ---
const (
	// MomentumHoldFrames is how long fire must be held before the
	// cooldown discount kicks in
	MomentumHoldFrames = 30
)

// --- Weapon Mastery ---
// Kills with a weapon permanently raise its damage: +1/+2/+3 at the
// three thresholds.
const (
	MasteryTier1Kills = 10
	MasteryTier2Kills = 25
	MasteryTier3Kills = 50
)

// --- Player Survivability ---
const (
	// InvincibilityFrames is the default mercy window after taking a
	// hit (2s); config overrides it
	InvincibilityFrames = 120

	// EncounterExitInvincibility covers the return to flight
	EncounterExitInvincibility = 120

	// PickupInvincibility is the short shield from golden enemy drops
	PickupInvincibility = 60

	// BlinkCycleShift controls the invincibility blink rate:
	// visibility toggles every 1<<BlinkCycleShift frames
	BlinkCycleShift = 2
)

// --- Enemy Defenses ---
const (
	// ShieldFlashFrames is the blink shown when a shield absorbs a hit
	ShieldFlashFrames = 6

	// DodgeFlashFrames is the blink shown when an elite evades
	DodgeFlashFrames = 3

	// DamageFlashFrames is the blink on a surviving enemy after a hit
	DamageFlashFrames = 6

	// SpawnFlashFrames is the brief spawn-in blink
	SpawnFlashFrames = 4

	// TelegraphFrames is the pre-fire warning blink trigger point:
	// when the fire countdown reaches this value the enemy flashes
	TelegraphFrames = 3
)

// --- Death Animation ---
// Destroyed enemies blink out over a short window. Quick kills and kills
// landed mid-flash get longer animations so they stay visible.
const (
	DeathFlashFrames         = 10
	DeathFlashMidBlink       = 14
	DeathFlashSpeedKill      = 12
	DeathFlashSpeedKillBlink = 16
)

// --- Adaptive Difficulty ---
const (
	// AdaptiveFireWaves is the wave count after which new spawns fire
	// 12.5% sooner
	AdaptiveFireWaves = 8

	// AdaptiveFireMinTimer guards the discount from eliminating short
	// countdowns entirely
	AdaptiveFireMinTimer = 8
)
