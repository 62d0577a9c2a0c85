package constants

import "time"

// Explosion effect defaults
const (
	ExplosionParticles = 20
	ExplosionBaseSize  = 50
	ExplosionRadius    = 80
	ExplosionDuration  = 500 * time.Millisecond

	// ExplosionMinSizeScale is the lower bound of a particle's random size scale
	ExplosionMinSizeScale = 0.5
)
