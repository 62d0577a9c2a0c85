package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/viper/constants"
)

// WaveType selects the oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// waveFunc maps a phase in [0,1) to a sample in [-1,1]
type waveFunc func(phase float64, rng *rand.Rand) float64

var waves = [...]waveFunc{
	WaveSine: func(p float64, _ *rand.Rand) float64 { return math.Sin(2 * math.Pi * p) },
	WaveSquare: func(p float64, _ *rand.Rand) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	WaveNoise: func(_ float64, rng *rand.Rand) float64 { return rng.Float64()*2 - 1 },
}

// tone is a finite mono wave duplicated on both channels
type tone struct {
	wave  waveFunc
	step  float64 // phase advance per sample
	phase float64
	left  int
	rng   *rand.Rand
}

// NewOscillator creates a streamer of freq Hz lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave: waves[wave],
		step: freq / float64(rate),
		left: rate.N(duration),
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.left <= 0 {
		return 0, false
	}
	n := min(len(samples), t.left)
	for i := range samples[:n] {
		v := t.wave(t.phase, t.rng)
		samples[i] = [2]float64{v, v}
		_, t.phase = math.Modf(t.phase + t.step)
	}
	t.left -= n
	return n, true
}

func (t *tone) Err() error { return nil }

// shaped multiplies a stream by a per-sample gain curve and cuts it at total samples
type shaped struct {
	src   beep.Streamer
	gain  func(pos int) float64
	pos   int
	total int
}

// NewEnvelope ramps s up from silence over attack and down to silence over release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total, a, r := rate.N(duration), rate.N(attack), rate.N(release)
	releaseStart := max(total-r, a)
	return &shaped{
		src:   s,
		total: total,
		gain: func(pos int) float64 {
			switch {
			case pos < a:
				return float64(pos) / float64(a)
			case r > 0 && pos >= releaseStart:
				return float64(total-pos) / float64(r)
			}
			return 1
		},
	}
}

func (e *shaped) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.total {
		return 0, false
	}
	n, ok := e.src.Stream(samples[:min(len(samples), e.total-e.pos)])
	for i := range samples[:n] {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *shaped) Err() error { return e.src.Err() }

// newVolume scales s linearly; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateHitSound builds the defeat effect: a noise burst over a low square rumble
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.HitSoundDuration

	noise := NewOscillator(0, d, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, d, constants.HitSoundAttack, constants.HitSoundRelease, rate)

	rumble := NewOscillator(constants.HitSoundRumbleFreq, d, WaveSquare, rate)
	rumbleShaped := NewEnvelope(rumble, d, constants.HitSoundAttack, d-constants.HitSoundAttack, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.7),
		newVolume(rumbleShaped, 0.3),
	)
	return newVolume(mixed, cfg.HitVolume*cfg.MasterVolume)
}
