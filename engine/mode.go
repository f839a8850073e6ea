package engine

import (
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/entity"
)

// EncounterHandler receives the kind of enemy whose contact opened the
// encounter. The handler runs synchronously inside the collision
// resolve, on the simulation goroutine.
type EncounterHandler func(kind entity.EnemyKind)

// ModeController owns the flight/encounter state machine. Contact with
// a strong enemy escalates flight into an encounter through a single
// replaceable handler; completion is driven externally when the
// encounter shell finishes. At most one escalation is accepted per
// frame regardless of how many contacts resolve.
type ModeController struct {
	mode      core.GameMode
	handler   EncounterHandler
	requested bool // escalation latch, cleared by BeginFrame

	// LastKind records the enemy kind that opened the current or most
	// recent encounter, for the overlay and run stats
	LastKind entity.EnemyKind
}

// Mode returns the current game mode
func (c *ModeController) Mode() core.GameMode {
	return c.mode
}

// SetEncounterHandler installs or replaces the escalation handler.
// Passing nil is equivalent to ClearEncounterHandler.
func (c *ModeController) SetEncounterHandler(fn EncounterHandler) {
	c.handler = fn
}

// ClearEncounterHandler removes the handler; subsequent escalations
// degrade to the direct-damage fallback.
func (c *ModeController) ClearEncounterHandler() {
	c.handler = nil
}

// HandlerRegistered reports whether an escalation handler is installed
func (c *ModeController) HandlerRegistered() bool {
	return c.handler != nil
}

// BeginFrame rearms the per-frame escalation latch. Only flight frames
// rearm it: the latch holds through an encounter, so a completion can
// never be followed by a second escalation before the next flight
// frame begins.
func (c *ModeController) BeginFrame() {
	if c.mode == core.ModeFlight {
		c.requested = false
	}
}

// CanEscalate reports whether Escalate would be accepted right now.
// Collision resolution checks this before deactivating the entities
// involved, so the escalation transaction never half-commits.
func (c *ModeController) CanEscalate() bool {
	return !c.requested && c.mode == core.ModeFlight && c.handler != nil
}

// Escalate requests an encounter for a contact with the given enemy
// kind. The first request of a frame with a handler installed is
// accepted: the handler runs synchronously and the mode switches to
// ENCOUNTER. Refused when no handler is registered, when an escalation
// already fired this frame, or outside flight mode; the caller applies
// the degraded resolution (direct damage and a mercy window) instead.
func (c *ModeController) Escalate(kind entity.EnemyKind) bool {
	if !c.CanEscalate() {
		return false
	}
	c.requested = true
	c.LastKind = kind
	c.mode = core.ModeEncounter
	c.handler(kind)
	return true
}

// CompleteEncounter returns to flight. Only valid in encounter mode;
// calls in other modes are ignored. Returns whether a transition
// happened so the caller can grant the re-entry mercy window.
func (c *ModeController) CompleteEncounter() bool {
	if c.mode != core.ModeEncounter {
		return false
	}
	c.mode = core.ModeFlight
	return true
}

// GameOver latches the terminal mode; only Reset leaves it
func (c *ModeController) GameOver() {
	c.mode = core.ModeGameOver
}

// Reset restores flight mode for a new run. The installed handler
// survives resets; it belongs to the shell, not the run.
func (c *ModeController) Reset() {
	c.mode = core.ModeFlight
	c.requested = false
	c.LastKind = entity.KindScout
}
