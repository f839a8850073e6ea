package constant

// System Execution Priorities (lower runs first)
// Movement resolves before weapons so shots originate from the post-move
// position; collision runs last against settled positions.
const (
	PriorityPlayer    = 10
	PriorityWeapon    = 20
	PriorityBullet    = 30
	PriorityEnemy     = 40
	PrioritySpawn     = 50 // After enemy movement, before collision
	PriorityCollision = 60 // Final authority on the frame's outcome
)
