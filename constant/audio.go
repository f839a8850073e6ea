package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency; a short buffer
	// keeps effects in sync with 60fps gameplay
	AudioBufferDuration = 100 * time.Millisecond
)

// Shot Sound
const (
	ShotSoundDuration = 45 * time.Millisecond
	ShotSoundFreq     = 880.0 // Hz
)

// Hit Sound (bullet on armor)
const (
	HitSoundDuration = 60 * time.Millisecond
	HitSoundFreq     = 220.0
)

// Explosion Sound
const (
	ExplosionSoundDuration = 220 * time.Millisecond
	ExplosionStartFreq     = 180.0
	ExplosionEndFreq       = 40.0
)

// Damage Sound (player hit)
const (
	DamageSoundDuration = 160 * time.Millisecond
	DamageSoundFreq     = 110.0
)

// Graze Tick
const (
	GrazeSoundDuration = 25 * time.Millisecond
	GrazeSoundFreq     = 1320.0
)

// Escalation Alarm
const (
	AlarmSoundDuration = 350 * time.Millisecond
	AlarmLowFreq       = 330.0
	AlarmHighFreq      = 660.0
)

// Milestone Chime
const (
	MilestoneSoundDuration = 180 * time.Millisecond
	MilestoneNote1Freq     = 784.0  // G5
	MilestoneNote2Freq     = 1046.5 // C6
)

// Game Over Sting
const (
	GameOverSoundDuration = 500 * time.Millisecond
	GameOverStartFreq     = 440.0
	GameOverEndFreq       = 55.0
)

// Envelope Shaping
const (
	// EffectAttack keeps one-shot onsets click-free
	EffectAttack = 2 * time.Millisecond

	// EffectRelease is the default tail for short blips; the game-over
	// sting fades over its own longer window
	EffectRelease   = 20 * time.Millisecond
	GameOverRelease = 220 * time.Millisecond
)
