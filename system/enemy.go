package system

import (
	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/entity"
	"github.com/lixenwraith/starfall/vmath"
)

// EnemySystem runs the enemy lifecycle: the death blink-out, the
// per-pattern movement routines, off-screen culling with partial escape
// credit, and the fire countdown with its telegraph blink.
type EnemySystem struct {
	world   *engine.World
	enabled bool
}

func NewEnemySystem(world *engine.World) engine.System {
	s := &EnemySystem{world: world}
	s.Init()
	return s
}

func (s *EnemySystem) Init() {
	s.enabled = true
}

func (s *EnemySystem) Name() string { return "enemy" }

func (s *EnemySystem) Priority() int { return constant.PriorityEnemy }

func (s *EnemySystem) Update() {
	if !s.enabled {
		return
	}

	for i := range s.world.Enemies.Slots {
		e := &s.world.Enemies.Slots[i]
		switch e.State {
		case entity.StateDying:
			// Blink out, then release the slot
			if e.FlashTimer > 0 {
				e.FlashTimer--
			}
			if e.FlashTimer == 0 {
				e.State = entity.StateInactive
			}
		case entity.StateActive:
			s.updateActive(i, e)
		}
	}
}

func (s *EnemySystem) updateActive(i int, e *entity.Enemy) {
	w := s.world

	if e.Age < 255 {
		e.Age++
	}

	s.move(e)

	// Cull outside the padded field. A downward escape still pays a
	// quarter of the score: the threat left, just not by the player's
	// hand.
	x := vmath.ToInt(e.PreciseX)
	y := vmath.ToInt(e.PreciseY)
	if y > constant.EnemyCullMaxY || y < constant.EnemyCullMinY ||
		x < constant.EnemyCullMinX || x > constant.EnemyCullMaxX {
		if y > constant.EnemyCullMaxY && !e.Hazard {
			w.Score.Add(entity.StatsFor(e.Kind).Score >> constant.EscapePartialShift)
		}
		w.Enemies.Free(i)
		return
	}

	s.fire(e)

	if e.FlashTimer > 0 {
		e.FlashTimer--
	}
}

// move advances one enemy along its pattern
func (s *EnemySystem) move(e *entity.Enemy) {
	switch e.Pattern {
	case entity.AISine:
		// Vertical drift with a horizontal weave around the spawn column
		e.PreciseY += e.VelY
		e.AITimer++
		e.PreciseX = vmath.FromInt(e.AIParamX + vmath.Strafe(e.AITimer>>2))

	case entity.AISwoop:
		// Curved entry: full lateral speed at first, bled off in steps
		// until the path straightens into a plain dive
		e.AITimer++
		e.Advance()
		if e.AITimer > constant.SwoopStartFrames && e.AITimer&7 == 0 && e.VelX != 0 {
			mag := vmath.Abs(e.VelX) - constant.SwoopDecel
			if mag < 0 {
				mag = 0
			}
			e.VelX = vmath.Mul(vmath.Sign(e.VelX), mag)
		}

	case entity.AIHover:
		e.Advance()
		if e.AIState == 0 {
			// Descend to the hover line, then start strafing
			if vmath.ToInt(e.PreciseY) >= constant.HoverTargetY {
				e.PreciseY = vmath.FromInt(constant.HoverTargetY)
				e.AIState = 1
				e.VelY = 0
				e.VelX = constant.SpeedHoverStrafe
			}
		} else {
			x := vmath.ToInt(e.PreciseX)
			if x <= constant.HoverMinX {
				e.VelX = constant.SpeedHoverStrafe
			} else if x >= constant.HoverMaxX {
				e.VelX = -constant.SpeedHoverStrafe
			}
		}

	case entity.AIChase:
		// Descend while nudging toward the player's column on alternate
		// frames; the deadzone stops jitter when roughly aligned
		e.PreciseY += e.VelY
		e.AITimer++
		if e.AITimer&1 != 0 {
			dx := vmath.ToInt(s.world.Player.PreciseX) - vmath.ToInt(e.PreciseX)
			if dx > constant.ChaseDeadzone {
				e.PreciseX += vmath.FromInt(1)
			} else if dx < -constant.ChaseDeadzone {
				e.PreciseX -= vmath.FromInt(1)
			}
		}

	default:
		e.Advance()
	}
}

// fire runs the countdown, the telegraph blink, and the shot itself.
// Aiming kinds shoot from the belly at the player's center; the rest
// drop straight fire.
func (s *EnemySystem) fire(e *entity.Enemy) {
	st := entity.StatsFor(e.Kind)
	if st.FireRate <= 0 || e.Hazard {
		return
	}

	// Brief blink just before the shot so the player can read it coming
	if e.FireTimer == constant.TelegraphFrames && e.FlashTimer == 0 {
		e.FlashTimer = constant.TelegraphFrames
	}

	e.FireTimer--
	if e.FireTimer > 0 {
		return
	}
	e.FireTimer = st.FireRate

	w := s.world
	ex := vmath.ToInt(e.PreciseX)
	ey := vmath.ToInt(e.PreciseY)

	var b *entity.Bullet
	var ok bool
	if e.Pattern == entity.AIHover || e.Pattern == entity.AIChase {
		ox := ex + 8
		oy := ey + constant.EnemySpriteSize
		px := vmath.ToInt(w.Player.PreciseX) + constant.PlayerSpriteSize/2
		py := vmath.ToInt(w.Player.PreciseY) + constant.PlayerSpriteSize/2
		vx, vy := vmath.AimVelocity(px-ox, py-oy, constant.HalfSpeedAimed)
		b, ok = w.Bullets.Spawn(entity.OwnerEnemy, entity.BulletEnemyAimed,
			vmath.FromInt(ox), vmath.FromInt(oy), vx, vy, st.Damage)
	} else {
		b, ok = w.Bullets.Spawn(entity.OwnerEnemy, entity.BulletEnemyBasic,
			vmath.FromInt(ex+8), vmath.FromInt(ey+24), 0, constant.SpeedEnemyVY, st.Damage)
	}
	if ok {
		// The shot remembers its shooter so a bullet hit can open an
		// encounter against the right kind
		b.SourceKind = e.Kind
	}
}
