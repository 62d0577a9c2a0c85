package engine

import (
	"math"

	"github.com/lixenwraith/viper/component"
	"github.com/lixenwraith/viper/constants"
	"github.com/lixenwraith/viper/physics"
	"github.com/lixenwraith/viper/vmath"
)

// updateEnemy moves and fires one small or large enemy by variant
// Enemies never resolve contact themselves; the player and its shots target them
func (w *World) updateEnemy(e *component.Entity) {
	frame := float64(e.Frame)

	switch e.Variant {
	case component.VariantWave:
		if e.Frame%constants.WaveFireInterval == 0 {
			w.fireAimed(e)
		}
		e.Pos.X += math.Sin(frame/constants.WaveDriftPeriod) * constants.WaveDriftAmplitude
		e.Pos.Y += e.Heading.Y * e.Speed

	case component.VariantLarge:
		if e.Frame%constants.LargeBurstInterval == 0 {
			w.fireBurst(e)
		}
		e.Pos.X += math.Sin((frame+constants.LargeDriftPhase)/constants.LargeDriftPeriod) * constants.LargeDriftAmplitude
		if e.Pos.Y < constants.LargeHoverY {
			e.Pos.Y += e.Heading.Y * e.Speed
		}

	default:
		if e.Frame%constants.DefaultFireInterval == 0 {
			w.fireAimed(e)
		}
		physics.Advance(e)
	}

	if w.Field.Despawn(e) {
		return
	}
	e.Frame++
}

// fireAimed launches one enemy shot toward the first target
func (w *World) fireAimed(e *component.Entity) {
	w.fireEnemyShot(e.Pos, aim(e))
}

// fireBurst launches the radial burst, 0 to 360 degrees inclusive
func (w *World) fireBurst(e *component.Entity) {
	for deg := 0; deg <= 360; deg += constants.LargeBurstStepDeg {
		w.fireEnemyShot(e.Pos, vmath.FromAngle(vmath.Deg2Rad(float64(deg))))
	}
}

func (w *World) fireEnemyShot(from, heading vmath.Vec2) {
	shot, ok := w.EnemyShots.Claim()
	if !ok {
		return
	}
	shot.SetShot(from, heading, constants.EnemyShotSpeed, constants.EnemyShotPower)
}

// aim returns the unit direction from e to its first target
// A target exactly on top of e gives straight down
func aim(e *component.Entity) vmath.Vec2 {
	target := e.Targets[0]
	if target.Pos == e.Pos {
		return vmath.V2(0, 1)
	}
	return vmath.Direction(e.Pos, target.Pos)
}
