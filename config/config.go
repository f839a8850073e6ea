package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/entity"
)

// Config holds every tunable the simulation reads at runtime. Values
// ship with playable defaults; a TOML file overrides them field by
// field. Combat numbers live here rather than in constants so balance
// changes don't require a rebuild.
type Config struct {
	Game    Game    `toml:"game"`
	Combat  Combat  `toml:"combat"`
	Audio   Audio   `toml:"audio"`
	Storage Storage `toml:"storage"`
}

type Game struct {
	// Seed fixes the RNG for reproducible runs; 0 derives one from the
	// clock at startup
	Seed uint64 `toml:"seed"`

	// StartingWeapon is one of single, spread, laser
	StartingWeapon string `toml:"starting_weapon"`
}

type Combat struct {
	PlayerMaxHP int `toml:"player_max_hp"`

	// ContactDamage is dealt to the player by scraping zone hazards
	ContactDamage int `toml:"contact_damage"`

	// RamDamage is dealt to an enemy when a body collision resolves as
	// mutual damage instead of opening an encounter
	RamDamage int `toml:"ram_damage"`

	// InvincibilityFrames is the mercy window after the player takes a
	// hit; 0 disables it
	InvincibilityFrames int `toml:"invincibility_frames"`

	// EscalationThreshold names the weakest enemy kind a player shot
	// escalates into an encounter instead of resolving instantly: one
	// of scout, fighter, heavy, elite
	EscalationThreshold string `toml:"escalation_threshold"`
}

type Audio struct {
	Enabled bool `toml:"enabled"`
}

type Storage struct {
	// HistoryPath is the SQLite database recording finished runs
	HistoryPath string `toml:"history_path"`

	// SavePath is the suspend-state snapshot file
	SavePath string `toml:"save_path"`
}

// Default returns the shipped tuning
func Default() *Config {
	return &Config{
		Game: Game{
			Seed:           0,
			StartingWeapon: "single",
		},
		Combat: Combat{
			PlayerMaxHP:         100,
			ContactDamage:       15,
			RamDamage:           25,
			InvincibilityFrames: constant.InvincibilityFrames,
			EscalationThreshold: "fighter",
		},
		Audio: Audio{
			Enabled: true,
		},
		Storage: Storage{
			HistoryPath: "starfall_history.db",
			SavePath:    "starfall_save.bin",
		},
	}
}

// Load reads a TOML file over the defaults. A missing file is not an
// error; the defaults are returned unchanged. A malformed file is.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// Save writes the config as TOML, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	if c.Combat.PlayerMaxHP <= 0 {
		return fmt.Errorf("player_max_hp must be positive, got %d", c.Combat.PlayerMaxHP)
	}
	if c.Combat.ContactDamage < 0 {
		return fmt.Errorf("contact_damage must not be negative, got %d", c.Combat.ContactDamage)
	}
	if c.Combat.RamDamage < 0 {
		return fmt.Errorf("ram_damage must not be negative, got %d", c.Combat.RamDamage)
	}
	if c.Combat.InvincibilityFrames < 0 {
		return fmt.Errorf("invincibility_frames must not be negative, got %d", c.Combat.InvincibilityFrames)
	}
	if _, err := kindFromName(c.Combat.EscalationThreshold); err != nil {
		return err
	}
	if _, err := weaponFromName(c.Game.StartingWeapon); err != nil {
		return err
	}
	return nil
}

// ThresholdKind returns the escalation threshold as an enemy kind.
// Validate has already vetted the name; unknown values fall back to
// fighter.
func (c *Config) ThresholdKind() entity.EnemyKind {
	k, err := kindFromName(c.Combat.EscalationThreshold)
	if err != nil {
		return entity.KindFighter
	}
	return k
}

// Weapon returns the configured starting weapon
func (c *Config) Weapon() entity.WeaponType {
	w, err := weaponFromName(c.Game.StartingWeapon)
	if err != nil {
		return entity.WeaponSingle
	}
	return w
}

func kindFromName(name string) (entity.EnemyKind, error) {
	switch name {
	case "scout":
		return entity.KindScout, nil
	case "fighter":
		return entity.KindFighter, nil
	case "heavy":
		return entity.KindHeavy, nil
	case "elite":
		return entity.KindElite, nil
	default:
		return 0, fmt.Errorf("unknown enemy kind %q", name)
	}
}

func weaponFromName(name string) (entity.WeaponType, error) {
	switch name {
	case "single":
		return entity.WeaponSingle, nil
	case "spread":
		return entity.WeaponSpread, nil
	case "laser":
		return entity.WeaponLaser, nil
	default:
		return 0, fmt.Errorf("unknown weapon %q", name)
	}
}
