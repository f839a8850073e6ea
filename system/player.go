package system

import (
	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/entity"
	"github.com/lixenwraith/starfall/vmath"
)

// Position clamp range in Q8.8, computed once
var (
	playerMinX = vmath.FromInt(constant.PlayerMinX)
	playerMaxX = vmath.FromInt(constant.PlayerMaxX)
	playerMinY = vmath.FromInt(constant.PlayerMinY)
	playerMaxY = vmath.FromInt(constant.PlayerMaxY)
)

// PlayerSystem moves the ship from held input and runs its per-frame
// timers: the invincibility blink, the combo flash, and the fire-hold
// counter reset. Movement is per-axis at full speed; diagonals are
// intentionally not normalized, so diagonal travel runs sqrt(2) faster.
type PlayerSystem struct {
	world   *engine.World
	enabled bool

	// prevInput detects key presses for edge-triggered actions
	prevInput core.Input
}

func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{world: world}
	s.Init()
	return s
}

func (s *PlayerSystem) Init() {
	s.enabled = true
	s.prevInput = 0
}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return constant.PriorityPlayer }

func (s *PlayerSystem) Update() {
	if !s.enabled {
		return
	}

	p := &s.world.Player
	in := s.world.Input

	// Mercy window blink: visibility toggles every few frames so the
	// ship reads as untouchable
	if p.InvincibleTimer > 0 {
		p.InvincibleTimer--
		p.Visible = (p.InvincibleTimer>>constant.BlinkCycleShift)&1 == 1
		if p.InvincibleTimer == 0 {
			p.Visible = true
		}
	} else {
		p.Visible = true
	}

	if p.ComboFlash > 0 {
		p.ComboFlash--
	}

	// Weapon cycles on the press, not while held
	if in.Held(core.InputCycleWeapon) && !s.prevInput.Held(core.InputCycleWeapon) {
		p.Weapon = (p.Weapon + 1) % entity.WeaponCount
		p.FireHold = 0
	}

	speed := constant.PlayerSpeedNormal
	if in.Held(core.InputFocus) {
		speed = constant.PlayerSpeedFocus
	}
	step := vmath.FromInt(speed)

	if in.Held(core.InputLeft) {
		p.PreciseX -= step
		p.Banking = -1
	} else if in.Held(core.InputRight) {
		p.PreciseX += step
		p.Banking = 1
	} else {
		p.Banking = 0
	}
	if in.Held(core.InputUp) {
		p.PreciseY -= step
	}
	if in.Held(core.InputDown) {
		p.PreciseY += step
	}

	p.PreciseX = vmath.Clamp(p.PreciseX, playerMinX, playerMaxX)
	p.PreciseY = vmath.Clamp(p.PreciseY, playerMinY, playerMaxY)

	// Rapid-fire momentum dies the moment the trigger is released
	if !in.Held(core.InputFire) {
		p.FireHold = 0
	}

	s.prevInput = in
}
