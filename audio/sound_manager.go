package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/core"
)

// SoundManager turns the simulation's per-frame sound requests into
// beep one-shots. Every effect is synthesized, no assets; a failed
// speaker leaves the manager permanently silent, never broken.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cfg         *Config
	initialized bool
}

// NewSoundManager creates a manager with the given mix. A nil config
// gets the defaults.
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		mixer: &beep.Mixer{},
		cfg:   cfg,
	}
}

// Initialize sets up the speaker. Disabled config is a successful
// no-op; the manager just stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayEffect queues one effect
func (sm *SoundManager) PlayEffect(t core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.playLocked(t)
}

// Flush plays every effect requested in a frame's sound bitmask. The
// shell calls it once per tick with the world's accumulated requests.
func (sm *SoundManager) Flush(sounds uint16) {
	if sounds == 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	for t := core.SoundType(0); t < core.SoundTypeCount; t++ {
		if sounds&(1<<uint(t)) != 0 {
			sm.playLocked(t)
		}
	}
}

// playLocked adds one synthesized effect to the live mix. The speaker
// streams from the mixer on its own goroutine, so the mutation happens
// under the speaker lock.
func (sm *SoundManager) playLocked(t core.SoundType) {
	if !sm.initialized {
		return
	}
	if s := GetSoundEffect(t, sm.cfg); s != nil {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
}
