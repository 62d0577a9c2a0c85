package effect

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/viper/constants"
	"github.com/lixenwraith/viper/vmath"
)

// particle is the per-trigger random shape of one fragment
type particle struct {
	dir        vmath.Vec2 // Unit direction
	speedScale float64    // [0, 1)
	sizeScale  float64    // [MinSizeScale, 1)
}

// Spark is one fragment as drawn on a given tick
type Spark struct {
	Pos  vmath.Vec2 // Centre
	Size float64    // Square edge
}

// Explosion is a time-based particle burst, pooled and reused by Trigger
type Explosion struct {
	ParticleCount int
	BaseSize      float64
	Radius        float64
	Duration      time.Duration

	Life   int
	Start  time.Time
	Origin vmath.Vec2

	particles []particle
	sparks    []Spark
	rng       *rand.Rand
}

// NewExplosion creates an inactive explosion with default shape
// rng is shared with the rest of the simulation and must only be used from the tick goroutine
func NewExplosion(rng *rand.Rand) *Explosion {
	return &Explosion{
		ParticleCount: constants.ExplosionParticles,
		BaseSize:      constants.ExplosionBaseSize,
		Radius:        constants.ExplosionRadius,
		Duration:      constants.ExplosionDuration,
		particles:     make([]particle, constants.ExplosionParticles),
		sparks:        make([]Spark, 0, constants.ExplosionParticles),
		rng:           rng,
	}
}

func (x *Explosion) Active() bool {
	return x.Life > 0
}

func (x *Explosion) Deactivate() {
	x.Life = 0
}

// Trigger starts the burst at pos, re-rolling every particle
func (x *Explosion) Trigger(pos vmath.Vec2, now time.Time) {
	x.Life = 1
	x.Start = now
	x.Origin = pos
	x.sparks = x.sparks[:0]

	if cap(x.particles) < x.ParticleCount {
		x.particles = make([]particle, x.ParticleCount)
	}
	x.particles = x.particles[:x.ParticleCount]

	for i := range x.particles {
		x.particles[i] = particle{
			dir:        vmath.FromAngle(x.rng.Float64() * 2 * math.Pi),
			speedScale: x.rng.Float64(),
			sizeScale:  constants.ExplosionMinSizeScale + x.rng.Float64()*(1-constants.ExplosionMinSizeScale),
		}
	}
}

// Sparks returns the sparks computed by the last Update since Trigger
func (x *Explosion) Sparks() []Spark {
	if !x.Active() {
		return nil
	}
	return x.sparks
}

// Progress returns the eased completion in [0, 1] at now
func (x *Explosion) Progress(now time.Time) float64 {
	if x.Duration <= 0 {
		return 1
	}
	elapsed := float64(now.Sub(x.Start)) / float64(x.Duration)
	remaining := 1 - math.Min(math.Max(elapsed, 0), 1)
	return 1 - remaining*remaining*remaining*remaining
}

// Update advances the burst to now and returns the sparks to draw
// The returned slice is reused by the next call
// Returns nil and deactivates once progress reaches 1
func (x *Explosion) Update(now time.Time) []Spark {
	if !x.Active() {
		return nil
	}

	p := x.Progress(now)
	if p >= 1 {
		x.Deactivate()
		return nil
	}
	s := 1 - p

	x.sparks = x.sparks[:0]
	for _, pt := range x.particles {
		x.sparks = append(x.sparks, Spark{
			Pos:  x.Origin.AddScaled(pt.dir, x.Radius*p*pt.speedScale),
			Size: x.BaseSize * pt.sizeScale * s,
		})
	}
	return x.sparks
}
