package render

// Frame collects every sprite drawn during one tick
// Owned by the tick goroutine; consumers receive a Clone
type Frame struct {
	Tick    uint64   `json:"tick"`
	Phase   string   `json:"phase"`
	Paused  bool     `json:"paused"`
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	Sprites []Sprite `json:"sprites"`
}

// NewFrame creates an empty frame for a width x height field
func NewFrame(width, height float64) *Frame {
	return &Frame{
		Width:   width,
		Height:  height,
		Sprites: make([]Sprite, 0, 256),
	}
}

// Draw appends s
func (f *Frame) Draw(s Sprite) {
	f.Sprites = append(f.Sprites, s)
}

// Begin clears the sprite list for a new tick, keeping capacity
func (f *Frame) Begin(tick uint64, phase string, paused bool) {
	f.Tick = tick
	f.Phase = phase
	f.Paused = paused
	f.Sprites = f.Sprites[:0]
}

// Clone returns a deep copy safe to hand to another goroutine
func (f *Frame) Clone() *Frame {
	c := *f
	c.Sprites = make([]Sprite, len(f.Sprites))
	copy(c.Sprites, f.Sprites)
	return &c
}

// Count returns the number of sprites of kind
func (f *Frame) Count(kind string) int {
	n := 0
	for _, s := range f.Sprites {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
