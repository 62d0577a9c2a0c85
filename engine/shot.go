package engine

import (
	"github.com/lixenwraith/viper/component"
	"github.com/lixenwraith/viper/physics"
)

// updateShot moves a straight projectile, resolves its single hit and despawns it off-field
func (w *World) updateShot(s *component.Entity) {
	physics.Advance(s)
	w.Resolver.Projectile(s)
	if !s.Active() || w.Field.Despawn(s) {
		return
	}
	s.Frame++
}

// updateHoming steers toward the target by the fixed turn step before moving
func (w *World) updateHoming(s *component.Entity) {
	physics.Pursue(s)
	w.Resolver.Projectile(s)
	if !s.Active() || w.Field.Despawn(s) {
		return
	}
	s.Frame++
}
