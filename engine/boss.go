package engine

import (
	"math"

	"github.com/lixenwraith/viper/component"
	"github.com/lixenwraith/viper/constants"
)

// updateBoss drifts sideways, descends to its hover line and fires homing shots
func (w *World) updateBoss(b *component.Entity) {
	b.Pos.X += math.Cos(float64(b.Frame)/constants.BossDriftPeriod) * constants.BossDriftAmplitude
	if b.Pos.Y <= constants.BossHoverY {
		b.Pos.Y += b.Speed
	}

	if b.Frame%constants.BossFireInterval == 0 {
		w.fireHoming(b)
	}

	if w.Field.Despawn(b) {
		return
	}
	b.Frame++
}

// fireHoming launches a homing shot with its initial heading aimed at the player
func (w *World) fireHoming(b *component.Entity) {
	shot, ok := w.Homing.Claim()
	if !ok {
		return
	}
	shot.SetShot(b.Pos, aim(b), constants.HomingSpeed, constants.HomingPower)
}
