package system

import (
	"testing"

	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/entity"
)

func countRegion(pool *entity.BulletPool, owner entity.Owner) int {
	n := 0
	pool.ForEachRegion(owner, func(int, *entity.Bullet) { n++ })
	return n
}

// TestTriggerFiresAndCoolsDown verifies a shot spawns one bullet and
// the cooldown blocks the next frames
func TestTriggerFiresAndCoolsDown(t *testing.T) {
	w := newTestWorld()
	s := &WeaponSystem{world: w, enabled: true}

	w.Input = core.InputFire
	s.Update()

	if got := countRegion(&w.Bullets, entity.OwnerPlayer); got != 1 {
		t.Fatalf("Expected 1 bullet after firing, got %d", got)
	}
	if w.Player.FireCooldown != constant.FireRateSingle {
		t.Errorf("Expected cooldown %d, got %d", constant.FireRateSingle, w.Player.FireCooldown)
	}
	if !w.SoundRequested(core.SoundShot) {
		t.Error("Expected shot sound request")
	}

	s.Update()
	if got := countRegion(&w.Bullets, entity.OwnerPlayer); got != 1 {
		t.Errorf("Expected cooldown to block the second frame, got %d bullets", got)
	}
}

// TestSpreadFiresThree verifies the spread pattern: one straight shot
// flanked by two angled ones
func TestSpreadFiresThree(t *testing.T) {
	w := newTestWorld()
	s := &WeaponSystem{world: w, enabled: true}
	w.Player.Weapon = entity.WeaponSpread

	w.Input = core.InputFire
	s.Update()

	if got := countRegion(&w.Bullets, entity.OwnerPlayer); got != 3 {
		t.Fatalf("Expected 3 spread bullets, got %d", got)
	}

	var left, right, straight int
	w.Bullets.ForEachRegion(entity.OwnerPlayer, func(_ int, b *entity.Bullet) {
		if b.VelY != constant.SpeedSpreadVY {
			t.Errorf("Expected spread vy %d, got %d", constant.SpeedSpreadVY, b.VelY)
		}
		switch {
		case b.VelX < 0:
			left++
		case b.VelX > 0:
			right++
		default:
			straight++
		}
	})
	if left != 1 || right != 1 || straight != 1 {
		t.Errorf("Expected 1 left / 1 straight / 1 right, got %d/%d/%d", left, straight, right)
	}
}

// TestMasteryRaisesDamage verifies weapon kills feed the flat damage
// bonus on new shots
func TestMasteryRaisesDamage(t *testing.T) {
	w := newTestWorld()
	s := &WeaponSystem{world: w, enabled: true}
	w.Player.WeaponKills[entity.WeaponSingle] = constant.MasteryTier3Kills

	w.Input = core.InputFire
	s.Update()

	w.Bullets.ForEachRegion(entity.OwnerPlayer, func(_ int, b *entity.Bullet) {
		if b.Damage != constant.DamageSingle+3 {
			t.Errorf("Expected mastered damage %d, got %d", constant.DamageSingle+3, b.Damage)
		}
	})
}

// TestMomentumDiscountsCooldown verifies sustained fire shortens the
// next cooldown by a quarter
func TestMomentumDiscountsCooldown(t *testing.T) {
	w := newTestWorld()
	s := &WeaponSystem{world: w, enabled: true}
	w.Player.FireHold = constant.MomentumHoldFrames

	w.Input = core.InputFire
	s.Update()

	want := constant.FireRateSingle - constant.FireRateSingle>>2
	if w.Player.FireCooldown != want {
		t.Errorf("Expected discounted cooldown %d, got %d", want, w.Player.FireCooldown)
	}
}

// TestNoFireWithoutTrigger verifies nothing spawns unprompted
func TestNoFireWithoutTrigger(t *testing.T) {
	w := newTestWorld()
	s := &WeaponSystem{world: w, enabled: true}

	w.Input = 0
	s.Update()
	if got := countRegion(&w.Bullets, entity.OwnerPlayer); got != 0 {
		t.Errorf("Expected no bullets without fire held, got %d", got)
	}
}
