package vmath

import "math"

// Vec2 is a float64 2D point or direction
// Treated as a value: every operation returns a new vector
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// AddScaled returns v + d*s, the per-tick advance step
func (v Vec2) AddScaled(d Vec2, s float64) Vec2 {
	return Vec2{v.X + d.X*s, v.Y + d.Y*s}
}

func (v Vec2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// Normalize divides by magnitude
// Zero vectors have no direction: the result is NaN and callers must not pass them
func (v Vec2) Normalize() Vec2 {
	mag := v.Mag()
	return Vec2{v.X / mag, v.Y / mag}
}

// Cross returns the z component of the 3D cross product of (v, 0) and (o, 0)
// Positive when o lies clockwise of v in screen space (y down)
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Rotate rotates by rad radians
func (v Vec2) Rotate(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns atan2(y, x)
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Direction returns the unit vector pointing from 'from' to 'to'
// Points must differ, see Normalize
func Direction(from, to Vec2) Vec2 {
	return to.Sub(from).Normalize()
}

// FromAngle returns the unit vector at rad radians
func FromAngle(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{cos, sin}
}

// Deg2Rad converts degrees to radians
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Clamp limits f to [lo, hi]
func Clamp(f, lo, hi float64) float64 {
	return math.Min(math.Max(f, lo), hi)
}
