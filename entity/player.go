package entity

import (
	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/vmath"
)

// WeaponType indexes the three player weapons
type WeaponType uint8

const (
	WeaponSingle WeaponType = iota
	WeaponSpread
	WeaponLaser
	WeaponCount
)

func (w WeaponType) String() string {
	switch w {
	case WeaponSingle:
		return "SINGLE"
	case WeaponSpread:
		return "SPREAD"
	case WeaponLaser:
		return "LASER"
	default:
		return "?"
	}
}

// Player is the single player ship. There is no pool; the ship always
// exists and Visible/InvincibleTimer gate its participation in
// collision.
type Player struct {
	core.Kinetic

	HP    int
	MaxHP int

	// InvincibleTimer is the mercy window after a hit or an encounter
	// exit; collision skips the player entirely while it runs
	InvincibleTimer int

	// Visible is false on blink-off frames and while an encounter
	// overlay hides the ship
	Visible bool

	Weapon       WeaponType
	FireCooldown int
	// FireHold counts consecutive frames with fire held, for the
	// rapid-fire momentum discount
	FireHold int

	// WeaponKills drives the mastery damage bonus per weapon
	WeaponKills [WeaponCount]int

	// ComboFlash is the palette flash countdown at 2x+ combo
	ComboFlash int

	// Banking is -1/0/+1 for the lean animation frame
	Banking int
}

// Reset places the ship at the start position with full HP
func (p *Player) Reset(maxHP int) {
	*p = Player{
		Kinetic: core.Kinetic{
			PreciseX: vmath.FromInt(constant.PlayerStartX),
			PreciseY: vmath.FromInt(constant.PlayerStartY),
		},
		HP:      maxHP,
		MaxHP:   maxHP,
		Visible: true,
	}
}

// MasteryBonus returns the flat damage bonus earned by kills with a
// weapon: +1/+2/+3 at the three thresholds.
func (p *Player) MasteryBonus(w WeaponType) int {
	if w >= WeaponCount {
		return 0
	}
	kills := p.WeaponKills[w]
	switch {
	case kills >= constant.MasteryTier3Kills:
		return 3
	case kills >= constant.MasteryTier2Kills:
		return 2
	case kills >= constant.MasteryTier1Kills:
		return 1
	default:
		return 0
	}
}

// TakeDamage subtracts HP with an underflow guard: HP clamps at zero
// and never goes negative. Returns true when the hit was lethal.
func (p *Player) TakeDamage(amount int) bool {
	if amount >= p.HP {
		p.HP = 0
		return true
	}
	p.HP -= amount
	return false
}
