package constant

// Score System
const (
	// ScoreMax is the display register ceiling; additions saturate here
	// and never wrap
	ScoreMax = 0xFFFF

	// GrazeScore is awarded per frame a bullet sits in the graze zone
	GrazeScore = 25

	// EscapePartialShift awards 25% of base score when an enemy exits
	// downward uncontested (score >> 2)
	EscapePartialShift = 2

	// OverkillMultiplier scores excess damage past the killing blow
	OverkillMultiplier = 10
)

// Combo System
// Each kill inside the window raises the multiplier; the window shrinks
// as the multiplier grows.
const (
	// ComboMaxMultiplier caps scoring at 4x
	ComboMaxMultiplier = 4

	// ComboBaseWindow is the window at 1x, in frames
	ComboBaseWindow = 60

	// ComboWindowStep is the per-multiplier window reduction (frames)
	ComboWindowStep = 8

	// ComboMinWindow floors the decaying window
	ComboMinWindow = 36

	// ComboGraceWindow is the 1x grace period granted instead of a hard
	// reset when a 5+ chain expires
	ComboGraceWindow = 30

	// ComboGraceCount is the chain length that earns the grace period
	ComboGraceCount = 5

	// ComboDisplayFrames is how long the multiplier stays on the HUD
	// after a kill
	ComboDisplayFrames = 30

	// ComboFlashFrames is the player palette flash at 2x and above
	ComboFlashFrames = 6
)

// Combo Milestones
const (
	ComboMilestone1      = 5
	ComboMilestone1Bonus = 500
	ComboMilestone2      = 10
	ComboMilestone2Bonus = 1500
	ComboMilestone3      = 15
	ComboMilestone3Bonus = 5000
)

// Kill Streak
// Kills without taking damage add +25% score per 5 kills, capped at +100%.
const (
	StreakKillsPerTier = 5
	StreakMaxTiers     = 4
)

// Special Bonuses
const (
	// SpeedKillFrames doubles score for kills within this age
	SpeedKillFrames = 90

	// ArsenalBonus rewards three consecutive kills with three different
	// weapons
	ArsenalBonus = 1000

	// WaveClearBonus rewards killing every enemy of a wave inside the
	// clear window
	WaveClearBonus = 500

	// WaveClearMinEnemies is the smallest wave eligible for the bonus
	WaveClearMinEnemies = 3

	// WaveClearWindow is the clear window in frames (5s)
	WaveClearWindow = 300
)

// Golden Variant
// One spawn in 16 comes up golden: double HP, triple score, permanent
// flash, and a chance to drop a brief invincibility pickup.
const (
	// GoldenSpawnOdds is the 1-in-N roll on the run RNG at spawn
	GoldenSpawnOdds = 16

	// GoldenScoreNumerator is the 3x score factor
	GoldenScoreNumerator = 3

	// GoldenFlash is the extended arrival blink on golden enemies
	GoldenFlash = 255
)
