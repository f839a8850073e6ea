package entity

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/lixenwraith/starfall/constant"
)

func TestEnemyPoolExhaustion(t *testing.T) {
	var p EnemyPool

	for i := 0; i < constant.MaxEnemies; i++ {
		if _, ok := p.Spawn(); !ok {
			t.Fatalf("Expected spawn %d to succeed", i)
		}
	}
	if e, ok := p.Spawn(); ok || e != nil {
		t.Errorf("Expected silent drop on full pool")
	}

	// active count reflects the full pool, drop left no trace
	if got := p.CountActive(); got != constant.MaxEnemies {
		t.Errorf("Expected %d active, got %d", constant.MaxEnemies, got)
	}
}

func TestEnemySpawnReusesFreedSlot(t *testing.T) {
	var p EnemyPool
	p.Spawn()
	p.Spawn()
	p.Spawn()

	p.Free(1)
	e, ok := p.Spawn()
	if !ok || e != &p.Slots[1] {
		t.Errorf("Expected freed slot 1 to be claimed next")
	}
}

func TestEnemyDyingSlotNotReused(t *testing.T) {
	var p EnemyPool
	e, _ := p.Spawn()
	e.Kind = KindScout
	e.HP = 10

	if destroyed := e.Damage(10); !destroyed {
		t.Fatalf("Expected lethal damage to destroy")
	}
	if e.State != StateDying {
		t.Errorf("Expected dying state, got %v", e.State)
	}

	// dying slots still occupy the pool and are skipped by iteration
	e2, _ := p.Spawn()
	if e2 == e {
		t.Errorf("Expected dying slot to stay occupied")
	}
	count := 0
	p.ForEachActive(func(i int, in *Enemy) { count++ })
	if count != 1 {
		t.Errorf("Expected 1 active enemy, got %d", count)
	}
}

func TestEnemyDamageSurvival(t *testing.T) {
	e := Enemy{State: StateActive, HP: 40}
	if e.Damage(15) {
		t.Fatalf("Expected enemy to survive")
	}
	if e.HP != 25 {
		t.Errorf("Expected 25 HP, got %d", e.HP)
	}
	if e.FlashTimer != constant.DamageFlashFrames {
		t.Errorf("Expected damage flash %d, got %d", constant.DamageFlashFrames, e.FlashTimer)
	}
}

func TestEnemyDamageExactKill(t *testing.T) {
	// damage equal to remaining HP is lethal, HP stays at zero
	e := Enemy{State: StateActive, HP: 10, Age: constant.SpeedKillFrames}
	if !e.Damage(10) {
		t.Fatalf("Expected exact damage to destroy")
	}
	if e.HP != 0 {
		t.Errorf("Expected 0 HP, got %d", e.HP)
	}
	if e.FlashTimer != constant.DeathFlashFrames {
		t.Errorf("Expected death flash %d, got %d", constant.DeathFlashFrames, e.FlashTimer)
	}
}

func TestEnemySpeedKillFlash(t *testing.T) {
	e := Enemy{State: StateActive, HP: 5, Age: 30}
	e.Damage(99)
	if e.FlashTimer != constant.DeathFlashSpeedKill {
		t.Errorf("Expected speed kill flash %d, got %d", constant.DeathFlashSpeedKill, e.FlashTimer)
	}

	// killed mid-blink extends the animation further
	e2 := Enemy{State: StateActive, HP: 5, Age: 30, FlashTimer: 3}
	e2.Damage(99)
	if e2.FlashTimer != constant.DeathFlashSpeedKillBlink {
		t.Errorf("Expected extended flash %d, got %d", constant.DeathFlashSpeedKillBlink, e2.FlashTimer)
	}
}

func TestStatsForClampsKind(t *testing.T) {
	if StatsFor(KindCount) != StatsFor(KindScout) {
		t.Errorf("Expected out-of-range kind to clamp to scout")
	}
	if StatsFor(KindHeavy).Pattern != AIHover {
		t.Errorf("Expected heavy to hover")
	}
	if StatsFor(KindElite).Score != 500 {
		t.Errorf("Expected elite score 500")
	}
}

// TestEnemyPoolLifecycleProperty interleaves random spawns, damage and
// frees: spawns claim only inactive slots, dying slots keep their slot
// until freed, and CountActive always matches a direct scan
func TestEnemyPoolLifecycleProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var p EnemyPool

		n := rapid.IntRange(1, 150).Draw(t, "n")
		for step := 0; step < n; step++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				before := [constant.MaxEnemies]EnemyState{}
				for i := range p.Slots {
					before[i] = p.Slots[i].State
				}
				e, ok := p.Spawn()
				if ok {
					e.HP = rapid.IntRange(1, 5).Draw(t, "hp")
					idx := -1
					for i := range p.Slots {
						if e == &p.Slots[i] {
							idx = i
						}
					}
					if idx < 0 {
						t.Fatalf("Expected spawned enemy to live in the pool")
					}
					if before[idx] != StateInactive {
						t.Fatalf("Expected spawn to claim an inactive slot, took state %d", before[idx])
					}
				}
			case 1:
				i := rapid.IntRange(0, constant.MaxEnemies-1).Draw(t, "dmg")
				if p.Slots[i].State == StateActive {
					p.Slots[i].Damage(rapid.IntRange(1, 3).Draw(t, "amount"))
				}
			case 2:
				p.Free(rapid.IntRange(-1, constant.MaxEnemies).Draw(t, "free"))
			}

			active := 0
			for i := range p.Slots {
				switch p.Slots[i].State {
				case StateActive:
					active++
				case StateDying:
					if p.Slots[i].HP > 0 {
						t.Fatalf("Expected dying slot %d to have no HP, got %d", i, p.Slots[i].HP)
					}
				}
			}
			if got := p.CountActive(); got != active {
				t.Fatalf("Expected CountActive %d, got %d", active, got)
			}
		}
	})
}
