package constants

// Collision divisors: contact iff distance < (wA+wB)/divisor
// Tuned gameplay values, keep exact
const (
	BodyContactDivisor       = 3
	ProjectileContactDivisor = 4
)

// HomingTurnDeg is the fixed angular step of homing pursuit per tick
const HomingTurnDeg = 1
