package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot      SoundType = iota // Player weapon fire
	SoundHit                        // Bullet on enemy armor
	SoundExplosion                  // Enemy destroyed
	SoundDamage                     // Player hit
	SoundGraze                      // Near miss bonus
	SoundAlarm                      // Encounter escalation
	SoundMilestone                  // Combo milestone reward
	SoundGameOver                   // Run ended
	SoundTypeCount
)
