package component

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/viper/vmath"
)

// Entity is one pooled actor
// All kinds share the struct; Kind selects update logic and the set operations
// reset every per-kind field they own
type Entity struct {
	Kind    Kind
	Variant Variant

	Pos           vmath.Vec2
	Width, Height float64
	Life          int

	Heading vmath.Vec2 // Unit direction of travel
	Angle   float64    // Facing for rendering, radians
	Speed   float64
	Power   int
	Opacity float64

	// Frame counts ticks since the last set operation, -1 when inactive
	Frame int

	// Targets are non-owning; the first one is the aim/track target
	Targets []*Entity

	// Player entry sub-state
	Coming      bool
	ComingFrame int
	Start       vmath.Vec2
	ShotCounter int

	ready atomic.Bool
}

// upAngle is the default facing, straight up the field
const upAngle = -math.Pi / 2

// NewEntity creates an inactive entity of the given kind and square size
func NewEntity(kind Kind, size float64) *Entity {
	return &Entity{
		Kind:    kind,
		Width:   size,
		Height:  size,
		Heading: vmath.V2(0, -1),
		Angle:   upAngle,
		Opacity: 1,
		Frame:   -1,
	}
}

// Active reports life > 0
func (e *Entity) Active() bool {
	return e.Life > 0
}

// Deactivate ends the entity's active life, leaving the slot reusable
func (e *Entity) Deactivate() {
	e.Life = 0
	e.Frame = -1
	e.Coming = false
}

// Invulnerable reports the player during its scripted entry
func (e *Entity) Invulnerable() bool {
	return e.Kind == KindPlayer && e.Coming
}

// SetTargets replaces the target list; the slice is retained, not copied
func (e *Entity) SetTargets(targets []*Entity) {
	e.Targets = targets
}

// Ready reports whether the external loader has prepared this entity's assets
func (e *Entity) Ready() bool {
	return e.ready.Load()
}

// MarkReady is called by the asset loader, possibly from another goroutine
func (e *Entity) MarkReady() {
	e.ready.Store(true)
}

// SetShot arms a projectile at pos travelling along heading
func (e *Entity) SetShot(pos, heading vmath.Vec2, speed float64, power int) {
	e.Pos = pos
	e.Heading = heading
	e.Angle = heading.Angle()
	e.Speed = speed
	e.Power = power
	e.Life = 1
	e.Frame = 0
	e.Opacity = 1
}

// SetEnemy arms an enemy of the given variant
func (e *Entity) SetEnemy(pos vmath.Vec2, life int, variant Variant, speed float64) {
	e.Pos = pos
	e.Life = life
	e.Variant = variant
	e.Speed = speed
	e.Heading = vmath.V2(0, 1)
	e.Angle = upAngle
	e.Frame = 0
	e.Opacity = 1
}

// SetBoss arms the boss with full life
func (e *Entity) SetBoss(pos vmath.Vec2, life int, speed float64) {
	e.Pos = pos
	e.Life = life
	e.Speed = speed
	e.Heading = vmath.V2(0, 1)
	e.Angle = upAngle
	e.Frame = 0
	e.Opacity = 1
}

// StartComing places the player at start and begins the entry sub-state
func (e *Entity) StartComing(start vmath.Vec2, life int) {
	e.Coming = true
	e.ComingFrame = 0
	e.Start = start
	e.Pos = start
	e.Life = life
	e.Frame = 0
	e.ShotCounter = 0
	e.Heading = vmath.V2(0, -1)
	e.Angle = upAngle
	e.Opacity = 1
}
