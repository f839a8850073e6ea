package engine

import (
	"testing"

	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/entity"
)

func TestComboMultiplierGrowsAndCaps(t *testing.T) {
	var c ComboMeter

	for i := 1; i <= 6; i++ {
		mult, _ := c.RegisterKill()
		want := i
		if want > constant.ComboMaxMultiplier {
			want = constant.ComboMaxMultiplier
		}
		if mult != want {
			t.Errorf("Expected %dx on kill %d, got %dx", want, i, mult)
		}
	}
	if c.Count != 6 {
		t.Errorf("Expected chain count 6, got %d", c.Count)
	}
}

func TestComboWindowShrinksWithMultiplier(t *testing.T) {
	var c ComboMeter

	c.RegisterKill()
	if c.Timer != constant.ComboBaseWindow-constant.ComboWindowStep {
		t.Errorf("Expected first window %d, got %d", constant.ComboBaseWindow-constant.ComboWindowStep, c.Timer)
	}

	for i := 0; i < 10; i++ {
		c.RegisterKill()
	}
	if c.Timer != constant.ComboMinWindow {
		t.Errorf("Expected window floor %d, got %d", constant.ComboMinWindow, c.Timer)
	}
}

func TestComboExpiryDropsChain(t *testing.T) {
	var c ComboMeter
	c.RegisterKill()
	c.RegisterKill()

	for i := 0; i < constant.ComboBaseWindow; i++ {
		c.Tick()
	}
	if c.Count != 0 || c.Multiplier != 0 {
		t.Errorf("Expected short chain gone on expiry, count %d mult %d", c.Count, c.Multiplier)
	}
}

func TestComboGraceSavesLongChain(t *testing.T) {
	var c ComboMeter
	for i := 0; i < constant.ComboGraceCount; i++ {
		c.RegisterKill()
	}

	// Run the window out: a 5+ chain drops to 1x but keeps its count
	// alive for a short grace
	for c.Timer > 1 {
		c.Tick()
	}
	c.Tick()
	if c.Count != constant.ComboGraceCount {
		t.Errorf("Expected count kept through grace, got %d", c.Count)
	}
	if c.Multiplier != 1 {
		t.Errorf("Expected 1x during grace, got %d", c.Multiplier)
	}
	if c.Timer != constant.ComboGraceWindow {
		t.Errorf("Expected grace window %d, got %d", constant.ComboGraceWindow, c.Timer)
	}

	// Grace expires too: chain finally dies
	for i := 0; i < constant.ComboGraceWindow; i++ {
		c.Tick()
	}
	if c.Count != 0 {
		t.Errorf("Expected chain dead after grace, got %d", c.Count)
	}
}

func TestComboMilestoneBonuses(t *testing.T) {
	var c ComboMeter
	var bonuses []int
	for i := 0; i < constant.ComboMilestone3; i++ {
		if _, m := c.RegisterKill(); m > 0 {
			bonuses = append(bonuses, m)
		}
	}
	want := []int{constant.ComboMilestone1Bonus, constant.ComboMilestone2Bonus, constant.ComboMilestone3Bonus}
	if len(bonuses) != len(want) {
		t.Fatalf("Expected %d milestones, got %v", len(want), bonuses)
	}
	for i := range want {
		if bonuses[i] != want[i] {
			t.Errorf("Expected milestone %d bonus %d, got %d", i+1, want[i], bonuses[i])
		}
	}
}

func TestStreakBoostTiers(t *testing.T) {
	var s KillStreak

	// First four kills carry no bonus
	for i := 0; i < constant.StreakKillsPerTier-1; i++ {
		if got := s.Boost(100); got != 100 {
			t.Errorf("Expected no boost on kill %d, got %d", i+1, got)
		}
	}
	// Fifth kill reaches tier one: +25%
	if got := s.Boost(100); got != 125 {
		t.Errorf("Expected 125 at tier one, got %d", got)
	}

	// Far into the streak the bonus caps at +100%
	for i := 0; i < 40; i++ {
		s.Boost(100)
	}
	if got := s.Boost(100); got != 200 {
		t.Errorf("Expected capped 200, got %d", got)
	}
}

func TestStreakBreak(t *testing.T) {
	var s KillStreak
	for i := 0; i < 10; i++ {
		s.Boost(100)
	}
	s.Break()
	if got := s.Boost(100); got != 100 {
		t.Errorf("Expected bonus gone after damage, got %d", got)
	}
}

func TestArsenalBonusOnThreeDistinctWeapons(t *testing.T) {
	var a ArsenalTracker

	if a.RegisterKill(entity.WeaponSingle) {
		t.Error("Expected no bonus before three kills")
	}
	if a.RegisterKill(entity.WeaponSpread) {
		t.Error("Expected no bonus before three kills")
	}
	if !a.RegisterKill(entity.WeaponLaser) {
		t.Error("Expected bonus on three distinct weapons")
	}

	// The window restarted empty: two fresh kills are not enough
	if a.RegisterKill(entity.WeaponSingle) {
		t.Error("Expected no instant re-trigger")
	}
	if a.RegisterKill(entity.WeaponSpread) {
		t.Error("Expected no bonus with a repeat in the window")
	}
	if !a.RegisterKill(entity.WeaponLaser) {
		t.Error("Expected bonus again after three fresh distinct kills")
	}
}

func TestArsenalRepeatWeaponNoBonus(t *testing.T) {
	var a ArsenalTracker
	a.RegisterKill(entity.WeaponSingle)
	a.RegisterKill(entity.WeaponSingle)
	if a.RegisterKill(entity.WeaponLaser) {
		t.Error("Expected no bonus with only two distinct weapons")
	}
}

func TestWaveClearRequiresFullKillInsideWindow(t *testing.T) {
	var w WaveTracker

	for i := 0; i < constant.WaveClearMinEnemies; i++ {
		w.OnSpawn()
	}
	for i := 0; i < constant.WaveClearMinEnemies-1; i++ {
		if w.OnKill() {
			t.Errorf("Expected no clear bonus at kill %d", i+1)
		}
	}
	if !w.OnKill() {
		t.Error("Expected clear bonus on the final kill")
	}

	// Counters collapsed for the next wave
	if w.EnemyCount != 0 || w.KillCount != 0 {
		t.Errorf("Expected counters reset, got %d/%d", w.KillCount, w.EnemyCount)
	}
}

func TestWaveClearWindowExpires(t *testing.T) {
	var w WaveTracker
	for i := 0; i < constant.WaveClearMinEnemies; i++ {
		w.OnSpawn()
	}
	for i := 0; i < constant.WaveClearWindow; i++ {
		w.Tick()
	}
	for i := 0; i < constant.WaveClearMinEnemies; i++ {
		if w.OnKill() {
			t.Error("Expected no bonus after the window lapsed")
		}
	}
}

func TestSmallWaveNeverPaysClearBonus(t *testing.T) {
	var w WaveTracker
	w.OnSpawn()
	w.OnSpawn()
	if w.OnKill() {
		t.Error("Expected no bonus for a two-enemy wave")
	}
	if w.OnKill() {
		t.Error("Expected no bonus for a two-enemy wave")
	}
}
