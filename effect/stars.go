package effect

import (
	"math/rand"

	"github.com/lixenwraith/viper/constants"
	"github.com/lixenwraith/viper/vmath"
)

// Star is one background point scrolling down the field
type Star struct {
	Pos   vmath.Vec2
	Size  float64
	Speed float64
}

// StarField is the scrolling background; it never interacts with entities
type StarField struct {
	Stars  []Star
	height float64
}

// NewStarField scatters count stars uniformly over a width x height field
func NewStarField(count int, width, height float64, rng *rand.Rand) *StarField {
	f := &StarField{
		Stars:  make([]Star, count),
		height: height,
	}
	for i := range f.Stars {
		f.Stars[i] = Star{
			Size:  constants.StarMinSize + (constants.StarMaxSize-constants.StarMinSize)*rng.Float64(),
			Speed: constants.StarMinSpeed + rng.Float64()*constants.StarSpeedRange,
			Pos:   vmath.V2(rng.Float64()*width, rng.Float64()*height),
		}
	}
	return f
}

// Update scrolls every star; a star fully below the field re-enters above it
func (f *StarField) Update() {
	for i := range f.Stars {
		s := &f.Stars[i]
		s.Pos.Y += s.Speed
		if s.Pos.Y >= f.height+s.Size {
			s.Pos.Y = -s.Size
		}
	}
}
