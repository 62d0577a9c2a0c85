package physics

import (
	"github.com/lixenwraith/viper/component"
	"github.com/lixenwraith/viper/constants"
	"github.com/lixenwraith/viper/vmath"
)

// TurnStep is the fixed angular step of homing pursuit, radians per tick
var TurnStep = vmath.Deg2Rad(constants.HomingTurnDeg)

// Steer turns heading by at most TurnStep toward target
// The sign of heading × direction-to-target picks the turn; zero means no turn
// pos and target must differ
func Steer(heading, pos, target vmath.Vec2) vmath.Vec2 {
	dir := vmath.Direction(pos, target)
	h := heading.Normalize()

	cross := h.Cross(dir)
	switch {
	case cross > 0:
		return h.Rotate(TurnStep)
	case cross < 0:
		return h.Rotate(-TurnStep)
	}
	return h
}

// Pursue steers a homing projectile toward its first target and advances it
// The projectile must have at least one target; sitting exactly on it keeps the heading
func Pursue(e *component.Entity) {
	target := e.Targets[0]
	if target.Pos != e.Pos {
		e.Heading = Steer(e.Heading, e.Pos, target.Pos)
	}
	e.Angle = e.Heading.Angle()
	Advance(e)
}
