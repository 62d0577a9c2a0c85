package physics

import (
	"github.com/lixenwraith/viper/component"
	"github.com/lixenwraith/viper/constants"
	"github.com/lixenwraith/viper/vmath"
)

// DefeatFunc is notified once per entity whose life drops to zero or below during a pass
type DefeatFunc func(defeated *component.Entity)

// Resolver applies contact damage between an entity and its declared targets
// Targets are checked in list order; a target never checks back
type Resolver struct {
	OnDefeat DefeatFunc
}

// Contact reports distance(a, b) < (a.Width + b.Width) / divisor, strictly
func Contact(a, b *component.Entity, divisor float64) bool {
	return vmath.Distance(a.Pos, b.Pos) < (a.Width+b.Width)/divisor
}

// Body resolves body-to-body contact: both sides lose one life per contact
// Every live target in contact is hit, even after e itself drops to zero
// A coming player on either side aborts the pass before any damage
// Returns the number of contacts applied
func (r *Resolver) Body(e *component.Entity) int {
	if !e.Active() || e.Invulnerable() {
		return 0
	}

	hits := 0
	for _, t := range e.Targets {
		if !t.Active() || !Contact(e, t, constants.BodyContactDivisor) {
			continue
		}
		if t.Invulnerable() {
			return hits
		}

		wasActive := e.Active()
		t.Life--
		e.Life--
		hits++

		if !t.Active() {
			r.defeat(t)
		}
		if wasActive && !e.Active() {
			r.defeat(e)
		}
	}
	return hits
}

// Projectile resolves single-hit contact for shots and homing projectiles
// The first target in contact takes p.Power damage and p is spent, even on a non-lethal hit
// A coming player target aborts the pass and leaves p alive
// Returns the target hit, or nil
func (r *Resolver) Projectile(p *component.Entity) *component.Entity {
	if !p.Active() {
		return nil
	}

	for _, t := range p.Targets {
		if !t.Active() || !Contact(p, t, constants.ProjectileContactDivisor) {
			continue
		}
		if t.Invulnerable() {
			return nil
		}

		t.Life -= p.Power
		p.Deactivate()

		if !t.Active() {
			r.defeat(t)
		}
		return t
	}
	return nil
}

func (r *Resolver) defeat(e *component.Entity) {
	if r.OnDefeat != nil {
		r.OnDefeat(e)
	}
}
