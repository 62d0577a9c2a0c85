package physics

import (
	"github.com/lixenwraith/viper/component"
	"github.com/lixenwraith/viper/vmath"
)

// Field is the visible play rectangle, origin top-left, y down
type Field struct {
	Width, Height float64
}

// Advance moves e one tick along its heading
func Advance(e *component.Entity) {
	e.Pos = e.Pos.AddScaled(e.Heading, e.Speed)
}

// Outside reports whether e has left the field by more than half its own size
func (f Field) Outside(e *component.Entity) bool {
	mx, my := e.Width/2, e.Height/2
	return e.Pos.X < -mx || e.Pos.X > f.Width+mx ||
		e.Pos.Y < -my || e.Pos.Y > f.Height+my
}

// Despawn deactivates e if it is outside the field
// Returns true if e was deactivated
func (f Field) Despawn(e *component.Entity) bool {
	if f.Outside(e) {
		e.Deactivate()
		return true
	}
	return false
}

// Clamp limits p to the field rectangle on both axes
func (f Field) Clamp(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: vmath.Clamp(p.X, 0, f.Width),
		Y: vmath.Clamp(p.Y, 0, f.Height),
	}
}

// Center returns the middle of the field
func (f Field) Center() vmath.Vec2 {
	return vmath.V2(f.Width/2, f.Height/2)
}
