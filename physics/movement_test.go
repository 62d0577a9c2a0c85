package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/viper/component"
	"github.com/lixenwraith/viper/vmath"
)

func TestAdvance(t *testing.T) {
	e := component.NewEntity(component.KindPlayerShot, 32)
	e.SetShot(vmath.V2(100, 100), vmath.V2(0, -1), 10, 1)
	Advance(e)
	assert.Equal(t, vmath.V2(100, 90), e.Pos)
}

func TestDespawnMargin(t *testing.T) {
	f := Field{Width: 600, Height: 480}
	tests := []struct {
		name string
		pos  vmath.Vec2
		out  bool
	}{
		{"inside", vmath.V2(300, 240), false},
		{"on top margin", vmath.V2(300, -24), false},
		{"past top margin", vmath.V2(300, -24.5), true},
		{"past right margin", vmath.V2(624.5, 100), true},
		{"on bottom margin", vmath.V2(10, 504), false},
		{"past left margin", vmath.V2(-25, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := component.NewEntity(component.KindEnemy, 48)
			e.SetEnemy(tt.pos, 2, component.VariantDefault, 3)
			assert.Equal(t, tt.out, f.Despawn(e))
			assert.Equal(t, !tt.out, e.Active())
			if tt.out {
				assert.Equal(t, -1, e.Frame)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	f := Field{Width: 600, Height: 480}
	assert.Equal(t, vmath.V2(0, 480), f.Clamp(vmath.V2(-10, 900)))
	assert.Equal(t, vmath.V2(600, 0), f.Clamp(vmath.V2(700, -3)))
	assert.Equal(t, vmath.V2(300, 240), f.Center())
}
