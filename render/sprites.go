package render

import "github.com/lixenwraith/starfall/entity"

// Sprite art, one rune row per cell row. Under the 4x8 pixel cell a
// 32px ship covers 8x4 cells and a 16px bullet 4x2. Spaces are
// transparent. Rows within a sprite must share one width so the drawn
// box matches the entity's screen footprint.

// Player ship, pointing up. Banking variants lean the wing rows toward
// the turn; left and right are mirrors.
var playerArt = []string{
	`   /\   `,
	`  |==|  `,
	` /|==|\ `,
	`/_|__|_\`,
}

var playerArtLeft = []string{
	`   /\   `,
	`  |==\  `,
	`  |==|\ `,
	`  /__|_\`,
}

var playerArtRight = []string{
	`   /\   `,
	`  /==|  `,
	` /|==|  `,
	`/_|__\  `,
}

// Enemy ships, pointing down. One entry per archetype.
var enemyArt = [entity.KindCount][]string{
	entity.KindScout: {
		` \    / `,
		`  \()/  `,
		`   \/   `,
		`   vv   `,
	},
	entity.KindFighter: {
		` _    _ `,
		`| \__/ |`,
		`\  ()  /`,
		` \_/\_/ `,
	},
	entity.KindHeavy: {
		`[======]`,
		`|##||##|`,
		`|##||##|`,
		` \o||o/ `,
	},
	entity.KindElite: {
		`\\ /\ //`,
		` \|##|/ `,
		`  |##|  `,
		`  /vv\  `,
	},
}

// hazardArt is the asteroid drawn for invulnerable scenery slots
// regardless of their nominal kind
var hazardArt = []string{
	` .-""-. `,
	`/ o  . \`,
	`\ .  o /`,
	` '-__-' `,
}

var bulletSingleArt = []string{
	` || `,
	` || `,
}

var bulletSpreadArt = []string{
	` <> `,
	`    `,
}

var bulletLaserArt = []string{
	` ## `,
	` ## `,
}

var bulletEnemyArt = []string{
	` () `,
	`    `,
}

var bulletAimedArt = []string{
	` ** `,
	`    `,
}

// spriteFor picks the art for an enemy slot. Hazards override the kind
// table: a hazard spawned as a heavy is still an asteroid.
func spriteFor(e *entity.Enemy) []string {
	if e.Hazard {
		return hazardArt
	}
	if e.Kind < entity.KindCount {
		return enemyArt[e.Kind]
	}
	return enemyArt[entity.KindScout]
}

func bulletSpriteFor(kind entity.BulletKind) []string {
	switch kind {
	case entity.BulletSpread:
		return bulletSpreadArt
	case entity.BulletLaser:
		return bulletLaserArt
	case entity.BulletEnemyBasic:
		return bulletEnemyArt
	case entity.BulletEnemyAimed:
		return bulletAimedArt
	default:
		return bulletSingleArt
	}
}

func playerSpriteFor(banking int) []string {
	switch {
	case banking < 0:
		return playerArtLeft
	case banking > 0:
		return playerArtRight
	default:
		return playerArt
	}
}
