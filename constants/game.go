package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the default simulation step interval
	TickInterval = 20 * time.Millisecond

	// ReadyPollInterval is the retry interval of the asset readiness gate
	ReadyPollInterval = 100 * time.Millisecond

	// KeyHoldWindow is how long a key counts as held after its last press event
	// Terminals report presses and auto-repeat only, never releases
	KeyHoldWindow = 120 * time.Millisecond
)

// Field dimensions in simulation units
const (
	FieldWidth  = 600
	FieldHeight = 480
)

// Player entry ("coming") sub-state
const (
	// ComingRisePerFrame is the linear ascent per frame during entry
	ComingRisePerFrame = 2

	// ComingStopOffset is the distance above the bottom edge where entry ends
	ComingStopOffset = 100

	// ComingDimOpacity is applied on every other entry frame
	ComingDimOpacity = 0.5
)

// Game over banner
const (
	GameOverText = "GAME OVER"
)
