package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a bounded oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep generates a wave whose frequency glides linearly from start to
// end over the duration. Explosions fall, the game-over sting sinks.
type sweep struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewSweep creates a frequency-glide oscillator
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, false
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.startFreq + (s.endFreq-s.startFreq)*progress

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (s.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase = s.phase - math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over a bounded stream
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume creates a volume effect safely.
// math.Log2(0) is -Inf, so zero volume becomes silence instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateShotSound generates the short pew of a player shot
func CreateShotSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constant.ShotSoundFreq, constant.ShotSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constant.ShotSoundDuration, constant.EffectAttack, constant.EffectRelease, rate)

	vol := cfg.EffectVolumes[core.SoundShot] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateHitSound generates the dull thunk of a bullet on armor
func CreateHitSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constant.HitSoundFreq, constant.HitSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constant.HitSoundDuration, constant.EffectAttack, constant.EffectRelease, rate)

	vol := cfg.EffectVolumes[core.SoundHit] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateExplosionSound generates a falling rumble with a noise burst
func CreateExplosionSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	rumble := NewSweep(constant.ExplosionStartFreq, constant.ExplosionEndFreq, constant.ExplosionSoundDuration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, constant.ExplosionSoundDuration, constant.EffectAttack, constant.ExplosionSoundDuration, rate)

	// Short debris crackle on top
	crackleDur := constant.ExplosionSoundDuration / 3
	crackle := NewOscillator(0, crackleDur, WaveNoise, rate)
	crackleShaped := NewEnvelope(crackle, crackleDur, constant.EffectAttack, crackleDur/2, rate)

	mixed := beep.Mix(
		newVolume(rumbleShaped, 0.7),
		newVolume(crackleShaped, 0.3),
	)

	vol := cfg.EffectVolumes[core.SoundExplosion] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateDamageSound generates the low slam of the player taking a hit
func CreateDamageSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constant.DamageSoundFreq, constant.DamageSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constant.DamageSoundDuration, constant.EffectAttack, constant.DamageSoundDuration/2, rate)

	vol := cfg.EffectVolumes[core.SoundDamage] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateGrazeSound generates the thin tick of a near miss
func CreateGrazeSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constant.GrazeSoundFreq, constant.GrazeSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constant.GrazeSoundDuration, constant.EffectAttack, constant.GrazeSoundDuration/2, rate)

	vol := cfg.EffectVolumes[core.SoundGraze] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateAlarmSound generates the two-tone siren for an escalation
func CreateAlarmSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	note := constant.AlarmSoundDuration / 4

	seq := make([]beep.Streamer, 4)
	for i := range seq {
		freq := constant.AlarmLowFreq
		if i%2 == 1 {
			freq = constant.AlarmHighFreq
		}
		osc := NewOscillator(freq, note, WaveSquare, rate)
		seq[i] = NewEnvelope(osc, note, constant.EffectAttack, constant.EffectAttack, rate)
	}

	vol := cfg.EffectVolumes[core.SoundAlarm] * cfg.MasterVolume
	return newVolume(beep.Seq(seq...), vol)
}

// CreateMilestoneSound generates a rising two-note chime
func CreateMilestoneSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	note := constant.MilestoneSoundDuration / 2

	n1 := NewOscillator(constant.MilestoneNote1Freq, note, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, note, constant.EffectAttack, constant.EffectRelease, rate)

	n2 := NewOscillator(constant.MilestoneNote2Freq, note, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, note, constant.EffectAttack, constant.EffectRelease, rate)

	vol := cfg.EffectVolumes[core.SoundMilestone] * cfg.MasterVolume
	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol)
}

// CreateGameOverSound generates the long sinking sting of a run ending
func CreateGameOverSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(constant.GameOverStartFreq, constant.GameOverEndFreq, constant.GameOverSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constant.GameOverSoundDuration, constant.EffectAttack, constant.GameOverRelease, rate)

	vol := cfg.EffectVolumes[core.SoundGameOver] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// GetSoundEffect returns the streamer for a frame outcome sound
func GetSoundEffect(soundType core.SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case core.SoundShot:
		return CreateShotSound(cfg)
	case core.SoundHit:
		return CreateHitSound(cfg)
	case core.SoundExplosion:
		return CreateExplosionSound(cfg)
	case core.SoundDamage:
		return CreateDamageSound(cfg)
	case core.SoundGraze:
		return CreateGrazeSound(cfg)
	case core.SoundAlarm:
		return CreateAlarmSound(cfg)
	case core.SoundMilestone:
		return CreateMilestoneSound(cfg)
	case core.SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
