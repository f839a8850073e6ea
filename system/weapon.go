package system

import (
	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/entity"
	"github.com/lixenwraith/starfall/vmath"
)

// WeaponSystem fires the armed weapon while the trigger is held.
// Sustained fire past the momentum threshold earns a cooldown discount,
// and kills per weapon feed a flat mastery damage bonus, so each weapon
// grows with use.
type WeaponSystem struct {
	world   *engine.World
	enabled bool
}

func NewWeaponSystem(world *engine.World) engine.System {
	s := &WeaponSystem{world: world}
	s.Init()
	return s
}

func (s *WeaponSystem) Init() {
	s.enabled = true
}

func (s *WeaponSystem) Name() string { return "weapon" }

func (s *WeaponSystem) Priority() int { return constant.PriorityWeapon }

func (s *WeaponSystem) Update() {
	if !s.enabled {
		return
	}

	w := s.world
	p := &w.Player

	if p.FireCooldown > 0 {
		p.FireCooldown--
	}

	if !w.Input.Held(core.InputFire) {
		return
	}

	if p.FireHold < 255 {
		p.FireHold++
	}

	if p.FireCooldown > 0 {
		return
	}

	// Muzzle: bullet sprite centered on the ship's nose
	mx := vmath.FromInt(vmath.ToInt(p.PreciseX) + 8)
	my := vmath.FromInt(vmath.ToInt(p.PreciseY) - 4)

	mastery := p.MasteryBonus(p.Weapon)
	var rate int

	switch p.Weapon {
	case entity.WeaponSpread:
		dmg := constant.DamageSpread + mastery
		w.Bullets.Spawn(entity.OwnerPlayer, entity.BulletSpread,
			mx, my, 0, constant.SpeedSpreadVY, dmg)
		w.Bullets.Spawn(entity.OwnerPlayer, entity.BulletSpread,
			mx-vmath.FromInt(4), my, -constant.SpeedSpreadVX, constant.SpeedSpreadVY, dmg)
		w.Bullets.Spawn(entity.OwnerPlayer, entity.BulletSpread,
			mx+vmath.FromInt(4), my, constant.SpeedSpreadVX, constant.SpeedSpreadVY, dmg)
		rate = constant.FireRateSpread

	case entity.WeaponLaser:
		w.Bullets.Spawn(entity.OwnerPlayer, entity.BulletLaser,
			mx, my, 0, constant.SpeedLaserVY, constant.DamageLaser+mastery)
		rate = constant.FireRateLaser

	default:
		w.Bullets.Spawn(entity.OwnerPlayer, entity.BulletSingle,
			mx, my, 0, constant.SpeedSingleVY, constant.DamageSingle+mastery)
		rate = constant.FireRateSingle
	}

	// Momentum discount for sustained fire
	if p.FireHold > constant.MomentumHoldFrames {
		rate -= rate >> 2
	}
	p.FireCooldown = rate

	w.RequestSound(core.SoundShot)
}
