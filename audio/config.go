package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/core"
)

// Config holds audio tuning. Gameplay tunables live in the TOML config;
// audio stays on environment variables so a headless or remote session
// can silence the game without touching files.
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	EffectVolumes map[core.SoundType]float64
	SampleRate    int
}

// DefaultConfig returns the stock mix
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundShot:      0.5,
			core.SoundHit:       0.7,
			core.SoundExplosion: 1.0,
			core.SoundDamage:    1.0,
			core.SoundGraze:     0.35, // Fires every frame in the band, keep it a whisper
			core.SoundAlarm:     1.0,
			core.SoundMilestone: 0.8,
			core.SoundGameOver:  1.0,
		},
		SampleRate: constant.AudioSampleRate,
	}
}

// effectNames maps env JSON keys to sound types
var effectNames = map[string]core.SoundType{
	"shot":      core.SoundShot,
	"hit":       core.SoundHit,
	"explosion": core.SoundExplosion,
	"damage":    core.SoundDamage,
	"graze":     core.SoundGraze,
	"alarm":     core.SoundAlarm,
	"milestone": core.SoundMilestone,
	"gameover":  core.SoundGameOver,
}

// LoadConfig loads audio configuration from environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("STARFALL_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume as 0-100
	if volume := os.Getenv("STARFALL_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	// Per-effect volumes from JSON, e.g. {"graze": 0, "alarm": 0.8}
	if effectVols := os.Getenv("STARFALL_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := effectNames[name]; ok {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("STARFALL_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
