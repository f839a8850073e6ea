// Package save suspends and resumes a run through a small binary
// snapshot. The snapshot records progression and the player's loadout,
// not the transient battlefield: live bullets and enemies are dropped,
// and a resumed run re-enters flight with clear airspace and the usual
// mercy window. Spawn randomness is re-seeded on resume.
package save

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/entity"
)

// Version is bumped whenever the snapshot layout changes. Older files
// are refused rather than guessed at.
const Version = 1

// PlayerState is the persisted slice of the player ship
type PlayerState struct {
	X           int32                   `msgpack:"x"`
	Y           int32                   `msgpack:"y"`
	HP          int                     `msgpack:"hp"`
	Weapon      uint8                   `msgpack:"w"`
	WeaponKills [entity.WeaponCount]int `msgpack:"wk"`
}

// Snapshot is one suspended run
type Snapshot struct {
	Version  uint8       `msgpack:"v"`
	SavedAt  int64       `msgpack:"at"` // Unix seconds
	Score    int         `msgpack:"sc"`
	Kills    int         `msgpack:"k"`
	Waves    int         `msgpack:"wv"`
	Zone     int         `msgpack:"z"`
	ScrollY  int         `msgpack:"sy"`
	Frame    int         `msgpack:"f"`
	PlayTime uint16      `msgpack:"pt"` // Shell play-time counter, seconds
	Player   PlayerState `msgpack:"p"`
}

// Capture snapshots the world's run state. The caller must hold the
// update lock or have stopped the scheduler.
func Capture(w *engine.World, playTime uint16) *Snapshot {
	return &Snapshot{
		Version:  Version,
		SavedAt:  time.Now().Unix(),
		Score:    w.Score.Value(),
		Kills:    w.Kills,
		Waves:    w.WaveCount,
		Zone:     w.Zone,
		ScrollY:  w.ScrollY,
		Frame:    w.Frame,
		PlayTime: playTime,
		Player: PlayerState{
			X:           w.Player.PreciseX,
			Y:           w.Player.PreciseY,
			HP:          w.Player.HP,
			Weapon:      uint8(w.Player.Weapon),
			WeaponKills: w.Player.WeaponKills,
		},
	}
}

// Restore applies a snapshot to the world, replacing any run in
// progress. Same locking contract as Capture. The snapshot's HP is
// capped by the current config so a stale file cannot grant more
// health than the game allows.
func Restore(w *engine.World, s *Snapshot) {
	w.ResetRun()

	w.Score.Add(s.Score)
	w.Kills = s.Kills
	w.WaveCount = s.Waves
	w.Zone = s.Zone
	w.ScrollY = s.ScrollY
	w.Frame = s.Frame

	w.Player.PreciseX = s.Player.X
	w.Player.PreciseY = s.Player.Y
	if s.Player.HP < w.Player.MaxHP {
		w.Player.HP = s.Player.HP
	}
	w.Player.Weapon = entity.WeaponType(s.Player.Weapon)
	w.Player.WeaponKills = s.Player.WeaponKills

	// Resuming drops you back into scrolling space; the exit mercy
	// window covers the reorientation
	w.Player.InvincibleTimer = constant.EncounterExitInvincibility
}

// validate rejects snapshots that cannot belong to this build
func (s *Snapshot) validate() error {
	if s.Version != Version {
		return fmt.Errorf("unsupported save version %d (want %d)", s.Version, Version)
	}
	if s.Zone < 0 || s.Zone >= constant.ZoneCount {
		return fmt.Errorf("save zone %d out of range", s.Zone)
	}
	if s.Score < 0 || s.Score > constant.ScoreMax {
		return fmt.Errorf("save score %d out of range", s.Score)
	}
	if s.Player.HP <= 0 {
		return fmt.Errorf("save player HP %d not viable", s.Player.HP)
	}
	if s.Player.Weapon >= uint8(entity.WeaponCount) {
		return fmt.Errorf("save weapon %d unknown", s.Player.Weapon)
	}
	return nil
}

// Write persists a snapshot, creating parent directories
func Write(path string, s *Snapshot) error {
	raw, err := msgpack.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create save dir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	return nil
}

// Read loads a snapshot. A missing file returns (nil, nil): no save is
// not an error, it just means a fresh run.
func Read(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}
	s := &Snapshot{}
	if err := msgpack.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("failed to decode save %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Discard removes a consumed save file. Missing files are fine;
// resume-once semantics only need the file gone.
func Discard(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove save: %w", err)
	}
	return nil
}
