package system

import (
	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/entity"
	"github.com/lixenwraith/starfall/vmath"
)

// formation selects the shape of a spawned wave
type formation uint8

const (
	formationLine formation = iota
	formationV
	formationSides
	formationEscort
	formationHazard
	formationCount
)

// SpawnSystem launches enemy waves off the scroll odometer: one wave
// per spacing interval, shape and roster drawn from the run RNG, roster
// weights and HP scaled up by zone. Spawns that find the pool full are
// dropped; a thin wave is the pressure valve, not an error.
type SpawnSystem struct {
	world   *engine.World
	enabled bool
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{world: world}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.enabled = true
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return constant.PrioritySpawn }

func (s *SpawnSystem) Update() {
	if !s.enabled {
		return
	}

	w := s.world
	if w.ScrollY%constant.WaveSpacing != 0 {
		return
	}

	kind := s.pickKind()
	switch formation(w.Rand.Intn(int(formationCount))) {
	case formationV:
		s.spawnV(kind)
	case formationSides:
		s.spawnSides(kind)
	case formationEscort:
		s.spawnEscort()
	case formationHazard:
		s.spawnHazards()
	default:
		s.spawnLine(kind)
	}

	w.WaveCount++
}

// pickKind weights the roster by zone: later zones field the heavier
// kinds more often
func (s *SpawnSystem) pickKind() entity.EnemyKind {
	w := s.world
	roll := w.Rand.Intn(8)
	switch {
	case w.Zone >= 2:
		switch {
		case roll >= 6:
			return entity.KindElite
		case roll >= 4:
			return entity.KindHeavy
		case roll >= 2:
			return entity.KindFighter
		default:
			return entity.KindScout
		}
	case w.Zone == 1:
		switch {
		case roll >= 6:
			return entity.KindHeavy
		case roll >= 3:
			return entity.KindFighter
		default:
			return entity.KindScout
		}
	default:
		if roll >= 5 {
			return entity.KindFighter
		}
		return entity.KindScout
	}
}

// spawnEnemy places one enemy above the field and applies the spawn
// modifiers: zone HP scaling, the golden roll, the heavy shield, and
// the adaptive fire discount for veteran runs. Returns nil when the
// pool is full and the spawn was dropped.
func (s *SpawnSystem) spawnEnemy(kind entity.EnemyKind, x, y int) *entity.Enemy {
	w := s.world
	e, ok := w.Enemies.Spawn()
	if !ok {
		return nil
	}
	st := entity.StatsFor(kind)

	e.Kind = kind
	e.Pattern = st.Pattern
	e.PreciseX = vmath.FromInt(x)
	e.PreciseY = vmath.FromInt(y)
	e.VelY = vmath.FromQ4(st.Speed)
	e.AIParamX = x
	e.FlashTimer = constant.SpawnFlashFrames

	// Zone difficulty: +50% HP in zone 1, double from zone 2 on
	hp := st.MaxHP
	switch {
	case w.Zone >= 2:
		hp *= 2
	case w.Zone == 1:
		hp += hp >> 1
	}

	// One roll in 16 comes up golden: double HP, triple score, and a
	// long arrival blink that marks the prize. The roll rides the run
	// RNG, independent of the wave cadence.
	if w.Rand.Intn(constant.GoldenSpawnOdds) == 0 {
		e.Golden = true
		hp <<= 1
		e.FlashTimer = constant.GoldenFlash
	}
	e.HP = hp

	if kind == entity.KindHeavy {
		e.Shield = true
	}

	// Veteran runs face faster first shots; later shots use full rate
	ft := st.FireRate
	if w.WaveCount >= constant.AdaptiveFireWaves && ft > constant.AdaptiveFireMinTimer {
		ft -= ft >> 3
	}
	e.FireTimer = ft

	w.Wave.OnSpawn()
	return e
}

// spawnLine spreads a staggered rank across the top edge
func (s *SpawnSystem) spawnLine(kind entity.EnemyKind) {
	w := s.world
	count := 3 + w.Rand.Intn(3)
	spacing := (constant.ScreenWidth - 64) / count
	start := 16 + w.Rand.Intn(spacing)
	for i := 0; i < count; i++ {
		s.spawnEnemy(kind, start+i*spacing, -32-(i&1)*16)
	}
}

// spawnV leads with a point enemy and trails two staggered wing pairs
func (s *SpawnSystem) spawnV(kind entity.EnemyKind) {
	cx := 64 + s.world.Rand.Intn(constant.ScreenWidth-160)
	s.spawnEnemy(kind, cx, -32)
	s.spawnEnemy(kind, cx-30, -52)
	s.spawnEnemy(kind, cx+30, -52)
	s.spawnEnemy(kind, cx-60, -72)
	s.spawnEnemy(kind, cx+60, -72)
}

// spawnSides sends a swooping pair in from both edges. The pattern
// override turns whatever kind was rolled into a curved entry.
func (s *SpawnSystem) spawnSides(kind entity.EnemyKind) {
	if e := s.spawnEnemy(kind, -24, -24); e != nil {
		e.Pattern = entity.AISwoop
		e.VelX = constant.SpeedSideEntry
	}
	if e := s.spawnEnemy(kind, constant.ScreenWidth+8, -8); e != nil {
		e.Pattern = entity.AISwoop
		e.VelX = -constant.SpeedSideEntry
	}
}

// spawnEscort parks a heavy with two scout outriders
func (s *SpawnSystem) spawnEscort() {
	cx := 48 + s.world.Rand.Intn(constant.ScreenWidth-128)
	s.spawnEnemy(entity.KindHeavy, cx, -32)
	s.spawnEnemy(entity.KindScout, cx-40, -64)
	s.spawnEnemy(entity.KindScout, cx+40, -64)
}

// spawnHazards drops a loose field of invulnerable drifters. They never
// fire and shots pass through them; body contact is the only threat.
// Hazards are scenery, not wave members: they skip spawnEnemy so the
// wave-clear count never waits on something unkillable.
func (s *SpawnSystem) spawnHazards() {
	w := s.world
	count := 2 + w.Rand.Intn(2)
	for i := 0; i < count; i++ {
		e, ok := w.Enemies.Spawn()
		if !ok {
			return
		}
		x := 16 + w.Rand.Intn(constant.ScreenWidth-64)
		e.Kind = entity.KindScout
		e.Pattern = entity.AILinear
		e.Hazard = true
		e.HP = 1
		e.PreciseX = vmath.FromInt(x)
		e.PreciseY = vmath.FromInt(-32 - i*24)
		e.VelY = vmath.FromInt(1)
		e.AIParamX = x
	}
}
