package engine

import (
	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/entity"
)

// ComboMeter chains kills into a score multiplier. Each kill inside the
// window raises the multiplier up to 4x, and the window shrinks as the
// multiplier grows, so high chains demand constant aggression.
type ComboMeter struct {
	Count        int
	Multiplier   int
	Timer        int
	DisplayTimer int
	MaxCount     int // best chain this run, for session stats
}

// RegisterKill extends the chain. Returns the multiplier to score the
// kill with and any milestone bonus earned at chain 5/10/15.
func (c *ComboMeter) RegisterKill() (multiplier, milestone int) {
	c.Count++
	if c.Count > c.MaxCount {
		c.MaxCount = c.Count
	}

	c.Multiplier = c.Count
	if c.Multiplier > constant.ComboMaxMultiplier {
		c.Multiplier = constant.ComboMaxMultiplier
	}

	// Decaying window: 52/44/36 frames at 1x/2x/3x+
	c.Timer = constant.ComboBaseWindow - c.Multiplier*constant.ComboWindowStep
	if c.Timer < constant.ComboMinWindow {
		c.Timer = constant.ComboMinWindow
	}
	c.DisplayTimer = constant.ComboDisplayFrames

	switch c.Count {
	case constant.ComboMilestone1:
		milestone = constant.ComboMilestone1Bonus
	case constant.ComboMilestone2:
		milestone = constant.ComboMilestone2Bonus
	case constant.ComboMilestone3:
		milestone = constant.ComboMilestone3Bonus
	}
	return c.Multiplier, milestone
}

// Tick decays the window by one frame. An expiring 5+ chain is not cut
// to zero outright; it drops to 1x with a short grace window, so one
// slow kill can still save a long chain.
func (c *ComboMeter) Tick() {
	if c.Timer > 0 {
		c.Timer--
		if c.Timer == 0 {
			if c.Count >= constant.ComboGraceCount && c.Multiplier > 1 {
				c.Multiplier = 1
				c.Timer = constant.ComboGraceWindow
			} else {
				c.Count = 0
				c.Multiplier = 0
			}
		}
	}
	if c.DisplayTimer > 0 {
		c.DisplayTimer--
	}
}

// Reset clears the chain for a new run, keeping nothing
func (c *ComboMeter) Reset() {
	*c = ComboMeter{}
}

// KillStreak counts kills without taking damage. Every 5 kills adds
// +25% to kill scores, capped at +100%.
type KillStreak struct {
	Kills int
}

// Boost increments the streak and applies the current bonus to a score
// amount
func (s *KillStreak) Boost(amount int) int {
	s.Kills++
	tier := s.Kills / constant.StreakKillsPerTier
	if tier > constant.StreakMaxTiers {
		tier = constant.StreakMaxTiers
	}
	if tier > 0 {
		amount += (amount >> 2) * tier
	}
	return amount
}

// Break resets the streak when the player takes any damage
func (s *KillStreak) Break() {
	s.Kills = 0
}

// ArsenalTracker watches the weapon used for the last three kills and
// pays a bonus when all three differ, rewarding weapon switching.
type ArsenalTracker struct {
	buf   [3]entity.WeaponType
	idx   int
	fills int // kills recorded so far, saturates at 3
}

// Reset empties the ring
func (a *ArsenalTracker) Reset() {
	*a = ArsenalTracker{}
}

// RegisterKill records the killing weapon. Returns true when the last
// three kills used three different weapons; the window then restarts
// empty, so another payout needs three fresh kills.
func (a *ArsenalTracker) RegisterKill(w entity.WeaponType) bool {
	a.buf[a.idx] = w
	a.idx++
	if a.idx >= 3 {
		a.idx = 0
	}
	if a.fills < 3 {
		a.fills++
	}
	if a.fills < 3 {
		return false
	}
	if a.buf[0] != a.buf[1] && a.buf[1] != a.buf[2] && a.buf[0] != a.buf[2] {
		a.idx = 0
		a.fills = 0
		return true
	}
	return false
}

// WaveTracker checks for full wave clears: when every enemy of a wave
// of 3+ dies inside the clear window, a bonus is due.
type WaveTracker struct {
	EnemyCount int
	KillCount  int
	Timer      int
}

// OnSpawn registers a spawned enemy and rearms the clear window
func (w *WaveTracker) OnSpawn() {
	w.EnemyCount++
	w.Timer = constant.WaveClearWindow
}

// OnKill registers a kill and reports whether the wave was fully
// cleared in time
func (w *WaveTracker) OnKill() bool {
	w.KillCount++
	if w.KillCount >= w.EnemyCount && w.EnemyCount >= constant.WaveClearMinEnemies && w.Timer > 0 {
		w.EnemyCount = 0
		w.KillCount = 0
		w.Timer = 0
		return true
	}
	return false
}

// Tick expires the clear window
func (w *WaveTracker) Tick() {
	if w.Timer > 0 {
		w.Timer--
		if w.Timer == 0 {
			w.EnemyCount = 0
			w.KillCount = 0
		}
	}
}
