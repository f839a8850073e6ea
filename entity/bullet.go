package entity

import (
	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/core"
)

// BulletKind selects the projectile's hitbox, glyph and behavior
type BulletKind uint8

const (
	BulletSingle BulletKind = iota
	BulletSpread
	BulletLaser
	BulletEnemyBasic
	BulletEnemyAimed
)

// Owner selects which region of the bullet pool a spawn goes to
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Bullet is one projectile slot. Slots are reused in place; Active is
// the only authority on whether the slot holds a live bullet.
//
// SourceKind records, for enemy bullets, the kind of the enemy that
// fired it. A bullet that escalates into an encounter reports that
// kind, so the encounter opponent matches the shooter even when the
// shooter has since died or left the screen.
type Bullet struct {
	core.Kinetic
	Kind       BulletKind
	SourceKind EnemyKind
	Damage     int
	Active     bool
}

// Hitbox returns the collision region for this bullet's kind
func (b *Bullet) Hitbox() core.Hitbox {
	if b.Kind == BulletLaser {
		return constant.LaserHitbox
	}
	return constant.BulletHitbox
}

// BulletPool is the fixed 24-slot projectile store, partitioned by
// index: [0, MaxPlayerBullets) belongs to the player, the rest to
// enemies. The partition makes ownership a range check instead of a
// stored field, and bounds cross-faction checks to their own regions.
type BulletPool struct {
	Slots [constant.MaxBullets]Bullet
}

// Reset deactivates every slot
func (p *BulletPool) Reset() {
	for i := range p.Slots {
		p.Slots[i].Active = false
	}
}

// region returns the slot index bounds for an owner
func region(owner Owner) (lo, hi int) {
	if owner == OwnerPlayer {
		return 0, constant.MaxPlayerBullets
	}
	return constant.MaxPlayerBullets, constant.MaxBullets
}

// IsPlayerIndex reports which side of the partition a slot lies on
func IsPlayerIndex(i int) bool {
	return i < constant.MaxPlayerBullets
}

// Spawn claims the first inactive slot in the owner's region, scanning
// ascending. Position and velocity are Q8.8. When the region is
// exhausted the shot is dropped and ok is false; callers treat that as
// a non-event.
func (p *BulletPool) Spawn(owner Owner, kind BulletKind, x, y, vx, vy int32, damage int) (*Bullet, bool) {
	lo, hi := region(owner)
	for i := lo; i < hi; i++ {
		b := &p.Slots[i]
		if b.Active {
			continue
		}
		*b = Bullet{
			Kinetic: core.Kinetic{PreciseX: x, PreciseY: y, VelX: vx, VelY: vy},
			Kind:    kind,
			Damage:  damage,
			Active:  true,
		}
		return b, true
	}
	return nil, false
}

// Free deactivates a slot. Freeing an inactive or out-of-range slot is
// a no-op.
func (p *BulletPool) Free(i int) {
	if i < 0 || i >= constant.MaxBullets {
		return
	}
	p.Slots[i].Active = false
}

// ForEachActive visits live bullets in ascending slot order
func (p *BulletPool) ForEachActive(fn func(i int, b *Bullet)) {
	for i := range p.Slots {
		if p.Slots[i].Active {
			fn(i, &p.Slots[i])
		}
	}
}

// ForEachRegion visits live bullets of one owner in ascending order
func (p *BulletPool) ForEachRegion(owner Owner, fn func(i int, b *Bullet)) {
	lo, hi := region(owner)
	for i := lo; i < hi; i++ {
		if p.Slots[i].Active {
			fn(i, &p.Slots[i])
		}
	}
}
