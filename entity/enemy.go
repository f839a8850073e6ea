package entity

import (
	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/core"
)

// EnemyKind indexes the stats table
type EnemyKind uint8

const (
	KindScout EnemyKind = iota
	KindFighter
	KindHeavy
	KindElite
	KindCount
)

func (k EnemyKind) String() string {
	switch k {
	case KindScout:
		return "scout"
	case KindFighter:
		return "fighter"
	case KindHeavy:
		return "heavy"
	case KindElite:
		return "elite"
	default:
		return "unknown"
	}
}

// AIPattern selects the per-frame movement routine
type AIPattern uint8

const (
	AILinear AIPattern = iota
	AISine
	AISwoop
	AIHover
	AIChase
)

// EnemyStats is the static archetype definition. The table is data, not
// behavior: systems read it, nothing writes it after init.
type EnemyStats struct {
	MaxHP    int
	Speed    int32 // descent speed in Q12.4, widened to Q8.8 at spawn
	FireRate int   // frames between shots; 0 disables firing
	Pattern  AIPattern
	Score    int
	Damage   int // bullet and contact damage dealt by this kind
}

// enemyStats defines the four archetypes:
//
//	SCOUT:   dies in 1-2 hits, moves fast. Fodder.
//	FIGHTER: weaves on a sine, harder to hit. Mid-tier.
//	HEAVY:   parks and strafes, tanks hits. Mini-boss feel.
//	ELITE:   chases the player. High score value.
var enemyStats = [KindCount]EnemyStats{
	KindScout:   {MaxHP: 10, Speed: 0x20, FireRate: 90, Pattern: AILinear, Score: 100, Damage: 10},
	KindFighter: {MaxHP: 20, Speed: 0x10, FireRate: 60, Pattern: AISine, Score: 200, Damage: 15},
	KindHeavy:   {MaxHP: 40, Speed: 0x10, FireRate: 45, Pattern: AIHover, Score: 350, Damage: 20},
	KindElite:   {MaxHP: 30, Speed: 0x20, FireRate: 50, Pattern: AIChase, Score: 500, Damage: 20},
}

// StatsFor returns the archetype for a kind, clamping out-of-range
// values to scout
func StatsFor(kind EnemyKind) *EnemyStats {
	if kind >= KindCount {
		kind = KindScout
	}
	return &enemyStats[kind]
}

// EnemyState is the slot lifecycle. Dying slots are invisible to
// collision but still occupy the pool while the death blink plays out.
type EnemyState uint8

const (
	StateInactive EnemyState = iota
	StateActive
	StateDying
)

// Enemy is one pool slot
type Enemy struct {
	core.Kinetic
	Kind  EnemyKind
	State EnemyState
	HP    int

	// Pattern is copied from the stats table at spawn so side entries
	// can override it per instance
	Pattern AIPattern

	FireTimer int
	AIState   uint8 // pattern sub-state (hover: 0=descend 1=strafe)
	AITimer   int
	AIParamX  int // sine oscillation center, whole pixels

	FlashTimer int
	Age        int

	Shield bool // heavy spawn shield, absorbs one hit
	Golden bool // rare variant: 2x HP, 3x score
	Hazard bool // invulnerable scenery, contact-only
}

// EnemyPool is the fixed 8-slot enemy store
type EnemyPool struct {
	Slots [constant.MaxEnemies]Enemy
}

// Reset deactivates every slot
func (p *EnemyPool) Reset() {
	for i := range p.Slots {
		p.Slots[i].State = StateInactive
	}
}

// Spawn claims the first inactive slot in ascending order and returns
// it zeroed and active. The caller fills stats. Returns ok=false when
// the pool is full; the spawn is silently dropped.
func (p *EnemyPool) Spawn() (*Enemy, bool) {
	for i := range p.Slots {
		e := &p.Slots[i]
		if e.State != StateInactive {
			continue
		}
		*e = Enemy{State: StateActive}
		return e, true
	}
	return nil, false
}

// Free releases a slot immediately, skipping any death animation.
// Freeing an inactive or out-of-range slot is a no-op.
func (p *EnemyPool) Free(i int) {
	if i < 0 || i >= constant.MaxEnemies {
		return
	}
	p.Slots[i].State = StateInactive
}

// ForEachActive visits live enemies in ascending slot order. Dying
// slots are skipped; they no longer exist for gameplay.
func (p *EnemyPool) ForEachActive(fn func(i int, e *Enemy)) {
	for i := range p.Slots {
		if p.Slots[i].State == StateActive {
			fn(i, &p.Slots[i])
		}
	}
}

// CountActive returns the number of live enemies
func (p *EnemyPool) CountActive() int {
	n := 0
	for i := range p.Slots {
		if p.Slots[i].State == StateActive {
			n++
		}
	}
	return n
}

// Damage applies a hit to an enemy. Returns true if the enemy was
// destroyed. On destruction the slot transitions to StateDying with a
// blink-out animation; quick kills and kills landed mid-flash get
// longer animations so they stay visible.
func (e *Enemy) Damage(amount int) bool {
	if e.HP <= amount {
		e.HP = 0
		e.State = StateDying
		if e.Age < constant.SpeedKillFrames {
			if e.FlashTimer > 0 {
				e.FlashTimer = constant.DeathFlashSpeedKillBlink
			} else {
				e.FlashTimer = constant.DeathFlashSpeedKill
			}
		} else {
			if e.FlashTimer > 0 {
				e.FlashTimer = constant.DeathFlashMidBlink
			} else {
				e.FlashTimer = constant.DeathFlashFrames
			}
		}
		return true
	}
	e.HP -= amount
	e.FlashTimer = constant.DamageFlashFrames
	return false
}
