package engine

import (
	"sync"

	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/entity"
	"github.com/lixenwraith/starfall/vmath"
)

// System is one simulation stage. Systems run sequentially in priority
// order on the scheduler goroutine; they never run concurrently.
type System interface {
	Update()
	Priority() int // Lower values run first
	Name() string
}

// World owns every piece of simulation state. All writes happen on the
// scheduler goroutine while the update lock is held; the renderer takes
// the same lock read-only between ticks. There is no other
// synchronization and no aliasing: pools are plain arrays inside this
// struct.
type World struct {
	Bullets entity.BulletPool
	Enemies entity.EnemyPool
	Player  entity.Player

	Score   ScoreTracker
	Combo   ComboMeter
	Streak  KillStreak
	Arsenal ArsenalTracker
	Wave    WaveTracker
	Mode    ModeController

	// Input is written by the main goroutine before the tick handshake;
	// systems only read it
	Input core.Input

	// Outcome accumulates the frame's collision flags; cleared at frame
	// start, consumed by audio and render after the tick
	Outcome core.Outcome

	// Sounds accumulates the frame's effect requests as a bitmask of
	// core.SoundType; same lifecycle as Outcome
	Sounds uint16

	// Rand drives spawn variance; seeded once per run for determinism
	Rand *vmath.FastRand

	Config *config.Config

	// Frame is the simulation frame counter
	Frame int

	// Zone and ScrollY track level progression; ScrollY is the wave
	// trigger odometer within the current zone
	Zone    int
	ScrollY int

	// ScreenShake counts down impact shake frames for the renderer
	ScreenShake int

	// Kills counts destroyed enemies this run
	Kills int

	// WaveCount counts waves launched this run; the spawn director
	// reads it for adaptive difficulty
	WaveCount int

	systems    []System
	updateLock sync.Mutex
}

// NewWorld creates a world with the given config and RNG seed
func NewWorld(cfg *config.Config, seed uint64) *World {
	w := &World{
		Config: cfg,
		Rand:   vmath.NewFastRand(seed),
	}
	w.ResetRun()
	return w
}

// AddSystem registers a system, keeping the list sorted by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	return w.systems
}

// RunSafe executes fn while holding the update lock
func (w *World) RunSafe(fn func()) {
	w.updateLock.Lock()
	defer w.updateLock.Unlock()
	fn()
}

// Lock acquires the update lock directly
func (w *World) Lock() {
	w.updateLock.Lock()
}

// Unlock releases the update lock
func (w *World) Unlock() {
	w.updateLock.Unlock()
}

// Update advances the simulation one frame under the update lock
func (w *World) Update() {
	w.RunSafe(w.UpdateLocked)
}

// UpdateLocked advances one frame assuming the caller holds the update
// lock. Frame bookkeeping runs first so systems observe a clean slate:
// the outcome mask and escalation latch reset, then the scoring timers
// decay, then each system runs in priority order.
func (w *World) UpdateLocked() {
	w.Outcome = 0
	w.Sounds = 0
	w.Mode.BeginFrame()

	if w.Mode.Mode() != core.ModeFlight {
		// Encounter and game-over frames freeze the simulation; the
		// shell drives what happens next
		return
	}

	w.Combo.Tick()
	w.Wave.Tick()
	if w.ScreenShake > 0 {
		w.ScreenShake--
	}

	for _, s := range w.systems {
		s.Update()
	}

	w.Frame++
	w.ScrollY += constant.ScrollSpeed
	if w.ScrollY >= constant.ZoneLength {
		w.ScrollY = 0
		if w.Zone < constant.ZoneCount-1 {
			w.Zone++
		}
	}
}

// ResetRun restores a fresh run: pools cleared, score zeroed, player at
// start with configured HP. Registered systems and the encounter
// handler survive; they belong to the process, not the run.
func (w *World) ResetRun() {
	w.Bullets.Reset()
	w.Enemies.Reset()
	w.Player.Reset(w.Config.Combat.PlayerMaxHP)
	w.Player.Weapon = w.Config.Weapon()
	w.Score.Reset()
	w.Combo.Reset()
	w.Streak.Break()
	w.Arsenal.Reset()
	w.Wave = WaveTracker{}
	w.Mode.Reset()
	w.Outcome = 0
	w.Sounds = 0
	w.Input = 0
	w.Frame = 0
	w.Zone = 0
	w.ScrollY = 0
	w.ScreenShake = 0
	w.Kills = 0
	w.WaveCount = 0
}

// RequestSound queues a one-shot effect for the frame's audio pass
func (w *World) RequestSound(t core.SoundType) {
	w.Sounds |= 1 << uint(t)
}

// SoundRequested reports whether an effect was queued this frame
func (w *World) SoundRequested(t core.SoundType) bool {
	return w.Sounds&(1<<uint(t)) != 0
}

// CompleteEncounter ends the current encounter and re-enters flight
// with the mercy window that covers the transition
func (w *World) CompleteEncounter() {
	if w.Mode.CompleteEncounter() {
		w.Player.InvincibleTimer = constant.EncounterExitInvincibility
		w.Player.Visible = true
	}
}
