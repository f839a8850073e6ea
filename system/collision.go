package system

import (
	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/entity"
	"github.com/lixenwraith/starfall/vmath"
)

// CollisionSystem resolves the frame's contacts in three fixed passes:
// player shots against enemies, enemy shots against the player, then
// body contact. Each bullet spends itself on its first match; each pass
// touches the player at most once. An escalation ends the resolve on
// the spot: later passes never see entities the encounter consumed, so
// at most one encounter opens per frame.
type CollisionSystem struct {
	world   *engine.World
	enabled bool
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{world: world}
	s.Init()
	return s
}

func (s *CollisionSystem) Init() {
	s.enabled = true
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return constant.PriorityCollision }

func (s *CollisionSystem) Update() {
	if !s.enabled {
		return
	}
	s.Resolve()
}

// Resolve runs the three passes against settled positions. Results
// accumulate in world.Outcome for the frame's consumers. A pass that
// escalates reports it and the remaining passes are skipped for the
// frame; pass results committed before the escalation stand.
func (s *CollisionSystem) Resolve() {
	if s.playerShots() {
		return
	}
	if s.enemyShots() {
		return
	}
	if s.world.Mode.Mode() != core.ModeFlight {
		// A lethal hit ended the run mid-resolve
		return
	}
	s.contact()
}

// weaponForBullet maps a player bullet kind to the weapon that fired it,
// for kill attribution
func weaponForBullet(k entity.BulletKind) entity.WeaponType {
	switch k {
	case entity.BulletSpread:
		return entity.WeaponSpread
	case entity.BulletLaser:
		return entity.WeaponLaser
	default:
		return entity.WeaponSingle
	}
}

// playerShots is the first pass: every live player bullet against every
// live enemy, ascending slot order on both sides. The first overlap
// wins and the bullet is spent on it, even when a shield or a dodge
// soaks the damage. A shot landing on a kind at or above the threshold
// opens an encounter instead of trading HP: bullet and enemy both leave
// the field before the handler runs, and the resolve stops there. With
// no encounter shell listening, threshold kinds take damage like
// anything else.
func (s *CollisionSystem) playerShots() (escalated bool) {
	w := s.world
	threshold := w.Config.ThresholdKind()

	for bi := 0; bi < constant.MaxPlayerBullets; bi++ {
		b := &w.Bullets.Slots[bi]
		if !b.Active {
			continue
		}

		bx := vmath.ToInt(b.PreciseX)
		by := vmath.ToInt(b.PreciseY)

		// Shots beyond the visible field can't connect yet
		if by < -8 || by > constant.ScreenHeight+8 ||
			bx < -8 || bx > constant.ScreenWidth+8 {
			continue
		}

		hb := b.Hitbox()

		for ei := range w.Enemies.Slots {
			e := &w.Enemies.Slots[ei]
			if e.State != entity.StateActive || e.Hazard {
				continue
			}

			ex := vmath.ToInt(e.PreciseX)
			ey := vmath.ToInt(e.PreciseY)

			// Cheap vertical reject before the full box test
			if by+hb.OffY+hb.Height < ey || by+hb.OffY > ey+constant.EnemySpriteSize {
				continue
			}
			if !core.Overlap(bx, by, hb, ex, ey, constant.EnemyHitbox) {
				continue
			}

			w.Bullets.Free(bi)

			if e.Kind >= threshold && w.Mode.CanEscalate() {
				kind := e.Kind
				w.Enemies.Free(ei)
				w.Mode.Escalate(kind)
				w.Outcome |= core.OutcomeEscalated
				w.RequestSound(core.SoundAlarm)
				return true
			}

			if e.Shield {
				// The arrival shield soaks one hit, then shatters
				e.Shield = false
				e.FlashTimer = constant.ShieldFlashFrames
				w.Outcome |= core.OutcomeEnemyHit
				w.RequestSound(core.SoundHit)
				break
			}

			if e.Kind == entity.KindElite && w.Frame&4 == 0 {
				// Elite sidestep: hits during a dodge window whiff
				e.FlashTimer = constant.DodgeFlashFrames
				break
			}

			overkill := 0
			if b.Damage > e.HP {
				overkill = (b.Damage - e.HP) * constant.OverkillMultiplier
			}

			if e.Damage(b.Damage) {
				s.scoreKill(e, weaponForBullet(b.Kind), overkill)
			} else {
				w.Outcome |= core.OutcomeEnemyHit
				w.RequestSound(core.SoundHit)
			}
			break
		}
	}
	return false
}

// scoreKill pays out a destroyed enemy: base value through the golden
// and speed-kill multipliers, then combo, streak, and overkill, with
// the one-shot bonuses layered on top.
func (s *CollisionSystem) scoreKill(e *entity.Enemy, wp entity.WeaponType, overkill int) {
	w := s.world
	p := &w.Player

	base := entity.StatsFor(e.Kind).Score
	if e.Golden {
		base *= constant.GoldenScoreNumerator
		// Golden kills can shed a brief shield pickup; never shortens
		// a mercy window already running
		if w.Frame&1 == 0 {
			if p.InvincibleTimer < constant.PickupInvincibility {
				p.InvincibleTimer = constant.PickupInvincibility
			}
			w.Outcome |= core.OutcomeItemCollected
		}
	}
	if e.Age < constant.SpeedKillFrames {
		base *= 2
	}

	mult, milestone := w.Combo.RegisterKill()
	if mult >= 2 {
		p.ComboFlash = constant.ComboFlashFrames
	}
	if mult > 1 {
		base *= mult
	}

	base = w.Streak.Boost(base)
	base += overkill
	w.Score.Add(base)

	if milestone > 0 {
		w.Score.Add(milestone)
		w.RequestSound(core.SoundMilestone)
	}

	p.WeaponKills[wp]++
	if w.Arsenal.RegisterKill(wp) {
		w.Score.Add(constant.ArsenalBonus)
	}
	if w.Wave.OnKill() {
		w.Score.Add(constant.WaveClearBonus)
		if w.ScreenShake < constant.WaveClearShakeFrames {
			w.ScreenShake = constant.WaveClearShakeFrames
		}
	}
	w.Kills++

	// Every kill scrubs one enemy shot from the air
	for i := constant.MaxPlayerBullets; i < constant.MaxBullets; i++ {
		if w.Bullets.Slots[i].Active {
			w.Bullets.Free(i)
			break
		}
	}

	w.Outcome |= core.OutcomeEnemyKilled
	w.RequestSound(core.SoundExplosion)
}

// enemyShots is the second pass: enemy fire against the ship. The mercy
// window and blink-off frames make the player untouchable; the pass is
// skipped outright. Near misses passing through the graze band pay a
// trickle of score per frame they stay inside it. The shot that lands
// drags its shooter's kind into an encounter, or trades its damage
// directly when no shell is listening; one hit per frame either way.
func (s *CollisionSystem) enemyShots() (escalated bool) {
	w := s.world
	p := &w.Player

	if p.InvincibleTimer > 0 || !p.Visible {
		return false
	}

	px := vmath.ToInt(p.PreciseX)
	py := vmath.ToInt(p.PreciseY)

	hit := false
	grazed := false

	for bi := constant.MaxPlayerBullets; bi < constant.MaxBullets; bi++ {
		b := &w.Bullets.Slots[bi]
		if !b.Active {
			continue
		}

		by := vmath.ToInt(b.PreciseY)
		if by < -8 || by > constant.ScreenHeight+8 {
			continue
		}
		bx := vmath.ToInt(b.PreciseX)
		hb := b.Hitbox()

		if core.Overlap(bx, by, hb, px, py, constant.PlayerHitbox) {
			kind := b.SourceKind
			dmg := b.Damage
			w.Bullets.Free(bi)

			if w.Mode.CanEscalate() {
				w.Mode.Escalate(kind)
				w.Outcome |= core.OutcomeEscalated
				w.RequestSound(core.SoundAlarm)
				return true
			}

			s.damagePlayer(dmg)
			w.Outcome |= core.OutcomePlayerHit
			w.RequestSound(core.SoundDamage)
			hit = true
			break
		}

		if core.Overlap(bx, by, hb, px, py, constant.GrazeHitbox) {
			w.Score.Add(constant.GrazeScore)
			grazed = true
		}
	}

	if grazed && !hit {
		w.Outcome |= core.OutcomeGraze
		w.RequestSound(core.SoundGraze)
	}
	return false
}

// contact is the third pass: body collisions, one resolved per frame,
// under the same mercy-window guard as enemy fire. Contact with any
// enemy opens an encounter regardless of kind; the threshold only
// gates shots. With no shell listening the collision trades hull for
// hull: the player takes the enemy's contact damage, the enemy takes
// the configured ram damage. Hazards only bruise.
func (s *CollisionSystem) contact() {
	w := s.world
	p := &w.Player

	if p.InvincibleTimer > 0 || !p.Visible {
		return
	}

	px := vmath.ToInt(p.PreciseX)
	py := vmath.ToInt(p.PreciseY)

	for ei := range w.Enemies.Slots {
		e := &w.Enemies.Slots[ei]
		if e.State != entity.StateActive {
			continue
		}

		ex := vmath.ToInt(e.PreciseX)
		ey := vmath.ToInt(e.PreciseY)
		if !core.Overlap(px, py, constant.PlayerHitbox, ex, ey, constant.EnemyHitbox) {
			continue
		}

		w.Outcome |= core.OutcomePlayerContact

		if e.Hazard {
			s.damagePlayer(w.Config.Combat.ContactDamage)
			w.Outcome |= core.OutcomePlayerHit
			return
		}

		if w.Mode.CanEscalate() {
			kind := e.Kind
			w.Enemies.Free(ei)
			w.Mode.Escalate(kind)
			w.Outcome |= core.OutcomeEscalated
			w.RequestSound(core.SoundAlarm)
			return
		}

		// Mutual damage under a mercy window. A fatal ram still pays
		// the base bounty, but a body kill never feeds the combo or
		// weapon pipelines.
		s.damagePlayer(entity.StatsFor(e.Kind).Damage)
		w.Outcome |= core.OutcomePlayerHit
		if e.Damage(w.Config.Combat.RamDamage) {
			w.Score.Add(entity.StatsFor(e.Kind).Score)
			w.Outcome |= core.OutcomeEnemyKilled
			w.RequestSound(core.SoundExplosion)
		}
		return
	}
}

// damagePlayer applies a hit with its side effects: the mercy window,
// the broken streak, the impact shake, and the run-ending check
func (s *CollisionSystem) damagePlayer(amount int) {
	w := s.world
	p := &w.Player

	dead := p.TakeDamage(amount)
	p.InvincibleTimer = w.Config.Combat.InvincibilityFrames
	w.Streak.Break()
	if w.ScreenShake < constant.ShakeFrames {
		w.ScreenShake = constant.ShakeFrames
	}
	if dead {
		w.Mode.GameOver()
		w.RequestSound(core.SoundGameOver)
	}
}
