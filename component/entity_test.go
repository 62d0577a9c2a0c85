package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/viper/vmath"
)

func TestNewEntityIsInactive(t *testing.T) {
	e := NewEntity(KindEnemy, 48)
	assert.False(t, e.Active())
	assert.Equal(t, -1, e.Frame)
	assert.Equal(t, 48.0, e.Width)
	assert.Equal(t, 48.0, e.Height)
	assert.False(t, e.Ready())
}

func TestSetShotOverwritesFields(t *testing.T) {
	e := NewEntity(KindEnemyShot, 32)
	e.Power = 7
	e.Speed = 99

	e.SetShot(vmath.V2(10, 20), vmath.V2(1, 0), 5, 1)

	assert.True(t, e.Active())
	assert.Equal(t, vmath.V2(10, 20), e.Pos)
	assert.Equal(t, 5.0, e.Speed)
	assert.Equal(t, 1, e.Power)
	assert.Equal(t, 0, e.Frame)
	assert.InDelta(t, 0.0, e.Angle, 1e-12)
}

func TestSetEnemyResetsVariantAndFrame(t *testing.T) {
	e := NewEntity(KindEnemy, 48)
	e.SetEnemy(vmath.V2(100, -48), 2, VariantWave, 2)
	e.Frame = 40

	e.Deactivate()
	e.SetEnemy(vmath.V2(200, -48), 2, VariantDefault, 3)

	assert.Equal(t, VariantDefault, e.Variant)
	assert.Equal(t, 0, e.Frame)
	assert.Equal(t, 3.0, e.Speed)
	assert.Equal(t, vmath.V2(0, 1), e.Heading)
}

func TestStartComing(t *testing.T) {
	e := NewEntity(KindPlayer, 64)
	e.StartComing(vmath.V2(300, 480), 1)

	assert.True(t, e.Coming)
	assert.True(t, e.Invulnerable())
	assert.Equal(t, 1, e.Life)
	assert.Equal(t, vmath.V2(300, 480), e.Pos)

	e.Coming = false
	assert.False(t, e.Invulnerable())
}

func TestInvulnerableOnlyForPlayer(t *testing.T) {
	e := NewEntity(KindEnemy, 48)
	e.Coming = true
	assert.False(t, e.Invulnerable())
}

func TestVariantParse(t *testing.T) {
	for _, name := range []string{"default", "wave", "large"} {
		v, ok := ParseVariant(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, v.String())
	}
	_, ok := ParseVariant("zigzag")
	assert.False(t, ok)
}

func TestKindIsProjectile(t *testing.T) {
	assert.True(t, KindPlayerShot.IsProjectile())
	assert.True(t, KindHoming.IsProjectile())
	assert.False(t, KindBoss.IsProjectile())
	assert.Equal(t, "enemy_shot", KindEnemyShot.String())
}
