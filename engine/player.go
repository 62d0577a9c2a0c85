package engine

import (
	"github.com/lixenwraith/viper/component"
	"github.com/lixenwraith/viper/constants"
	"github.com/lixenwraith/viper/input"
	"github.com/lixenwraith/viper/vmath"
)

// updatePlayer runs body contact, then either the scripted entry or input-driven control
func (w *World) updatePlayer(in input.Snapshot) {
	p := w.Player
	if !p.Active() {
		return
	}
	p.Opacity = 1

	w.Resolver.Body(p)
	if !p.Active() {
		return
	}

	if p.Coming {
		w.stepComing(p)
	} else {
		w.steerPlayer(p, in)
	}

	p.Pos = w.Field.Clamp(p.Pos)
	p.Frame++
}

// stepComing rises linearly from the start point, blinking, until the stop line
func (w *World) stepComing(p *component.Entity) {
	p.Pos.Y = p.Start.Y - float64(p.ComingFrame)*constants.ComingRisePerFrame
	if p.ComingFrame%2 == 0 {
		p.Opacity = constants.ComingDimOpacity
	}

	stop := w.Field.Height - constants.ComingStopOffset
	if p.Pos.Y <= stop {
		p.Pos.Y = stop
		p.Coming = false
	}
	p.ComingFrame++
}

func (w *World) steerPlayer(p *component.Entity, in input.Snapshot) {
	if in.Left {
		p.Pos.X -= constants.PlayerSpeed
	}
	if in.Right {
		p.Pos.X += constants.PlayerSpeed
	}
	if in.Up {
		p.Pos.Y -= constants.PlayerSpeed
	}
	if in.Down {
		p.Pos.Y += constants.PlayerSpeed
	}

	if in.Fire && p.ShotCounter >= 0 {
		if w.firePlayerShot() {
			p.ShotCounter = -constants.PlayerShotCooldown
		}
	}
	p.ShotCounter++
}

// firePlayerShot launches one shot straight up from the player
// Returns false when every shot slot is in flight
func (w *World) firePlayerShot() bool {
	shot, ok := w.PlayerShots.Claim()
	if !ok {
		return false
	}
	shot.SetShot(w.Player.Pos, vmath.V2(0, -1), constants.PlayerShotSpeed, constants.PlayerShotPower)
	return true
}
