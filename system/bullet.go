package system

import (
	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/entity"
	"github.com/lixenwraith/starfall/vmath"
)

// BulletSystem advances every live projectile and retires those that
// leave the padded playfield. Hit response belongs to the collision
// pass later in the frame; this system only moves and culls.
type BulletSystem struct {
	world   *engine.World
	enabled bool
}

func NewBulletSystem(world *engine.World) engine.System {
	s := &BulletSystem{world: world}
	s.Init()
	return s
}

func (s *BulletSystem) Init() {
	s.enabled = true
}

func (s *BulletSystem) Name() string { return "bullet" }

func (s *BulletSystem) Priority() int { return constant.PriorityBullet }

func (s *BulletSystem) Update() {
	if !s.enabled {
		return
	}

	pool := &s.world.Bullets
	pool.ForEachActive(func(i int, b *entity.Bullet) {
		b.Advance()

		x := vmath.ToInt(b.PreciseX)
		y := vmath.ToInt(b.PreciseY)
		if x < constant.BulletCullMinX || x > constant.BulletCullMaxX ||
			y < constant.BulletCullMinY || y > constant.BulletCullMaxY {
			pool.Free(i)
		}
	})
}
