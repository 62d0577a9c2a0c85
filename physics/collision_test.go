package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/viper/component"
	"github.com/lixenwraith/viper/vmath"
)

func place(kind component.Kind, size float64, x, y float64, life int) *component.Entity {
	e := component.NewEntity(kind, size)
	e.Pos = vmath.V2(x, y)
	e.Life = life
	return e
}

func TestContactStrictInequality(t *testing.T) {
	tests := []struct {
		name    string
		wa, wb  float64
		divisor float64
		dist    float64
		want    bool
	}{
		{"projectile exactly at threshold", 32, 64, 4, 24, false},
		{"projectile just inside", 32, 64, 4, 23.999, true},
		{"projectile outside", 32, 64, 4, 30, false},
		{"body exactly at threshold", 60, 30, 3, 30, false},
		{"body just inside", 60, 30, 3, 29.999, true},
		{"body overlapping centres", 64, 48, 3, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := place(component.KindPlayerShot, tt.wa, 0, 0, 1)
			b := place(component.KindEnemy, tt.wb, tt.dist, 0, 1)
			assert.Equal(t, tt.want, Contact(a, b, tt.divisor))
		})
	}
}

func TestBodyMutualDamage(t *testing.T) {
	player := place(component.KindPlayer, 64, 100, 100, 3)
	enemy := place(component.KindEnemy, 48, 110, 100, 2)
	player.SetTargets([]*component.Entity{enemy})

	var defeated []*component.Entity
	r := &Resolver{OnDefeat: func(e *component.Entity) { defeated = append(defeated, e) }}

	hits := r.Body(player)

	assert.Equal(t, 1, hits)
	assert.Equal(t, 2, player.Life)
	assert.Equal(t, 1, enemy.Life)
	assert.Empty(t, defeated)

	r.Body(player)
	assert.Equal(t, 1, player.Life)
	assert.Equal(t, 0, enemy.Life)
	require.Len(t, defeated, 1)
	assert.Same(t, enemy, defeated[0])
}

func TestBodyBothDefeated(t *testing.T) {
	player := place(component.KindPlayer, 64, 100, 100, 1)
	enemy := place(component.KindEnemy, 48, 100, 100, 1)
	second := place(component.KindEnemy, 48, 100, 100, 1)
	player.SetTargets([]*component.Entity{enemy, second})

	var defeated []*component.Entity
	r := &Resolver{OnDefeat: func(e *component.Entity) { defeated = append(defeated, e) }}
	r.Body(player)

	assert.ElementsMatch(t, []*component.Entity{enemy, player, second}, defeated)
	assert.Equal(t, 0, second.Life, "contact continues after the player drops to zero")
}

func TestBodyDamagesEveryOverlappingTarget(t *testing.T) {
	player := place(component.KindPlayer, 64, 100, 100, 1)
	first := place(component.KindEnemy, 48, 100, 100, 5)
	second := place(component.KindEnemy, 48, 100, 100, 5)
	player.SetTargets([]*component.Entity{first, second})

	defeats := 0
	r := &Resolver{OnDefeat: func(e *component.Entity) {
		assert.Same(t, player, e)
		defeats++
	}}

	assert.Equal(t, 2, r.Body(player))
	assert.Equal(t, 4, first.Life)
	assert.Equal(t, 4, second.Life)
	assert.False(t, player.Active())
	assert.Equal(t, 1, defeats, "the player is defeated once")
}

func TestBodyComingPlayerTakesNoDamage(t *testing.T) {
	player := place(component.KindPlayer, 64, 100, 100, 0)
	player.StartComing(vmath.V2(100, 100), 1)
	enemy := place(component.KindEnemy, 48, 100, 100, 2)
	player.SetTargets([]*component.Entity{enemy})

	r := &Resolver{}
	assert.Equal(t, 0, r.Body(player))
	assert.Equal(t, 1, player.Life)
	assert.Equal(t, 2, enemy.Life)

	// Entry over: standard mutual damage applies on the very next check
	player.Coming = false
	assert.Equal(t, 1, r.Body(player))
	assert.Equal(t, 0, player.Life)
	assert.Equal(t, 1, enemy.Life)
}

func TestProjectileSingleHit(t *testing.T) {
	shot := place(component.KindPlayerShot, 32, 50, 50, 1)
	shot.Power = 1
	a := place(component.KindEnemy, 48, 50, 50, 3)
	b := place(component.KindEnemy, 48, 50, 50, 3)
	shot.SetTargets([]*component.Entity{a, b})

	r := &Resolver{}
	hit := r.Projectile(shot)

	assert.Same(t, a, hit)
	assert.False(t, shot.Active(), "projectile despawns on non-lethal contact")
	assert.Equal(t, 2, a.Life)
	assert.Equal(t, 3, b.Life)
}

func TestProjectileSkipsInactiveTargets(t *testing.T) {
	shot := place(component.KindPlayerShot, 32, 50, 50, 1)
	shot.Power = 2
	dead := place(component.KindEnemy, 48, 50, 50, 0)
	live := place(component.KindLarge, 64, 55, 50, 2)
	shot.SetTargets([]*component.Entity{dead, live})

	var defeated []*component.Entity
	r := &Resolver{OnDefeat: func(e *component.Entity) { defeated = append(defeated, e) }}
	hit := r.Projectile(shot)

	assert.Same(t, live, hit)
	assert.Equal(t, 0, live.Life)
	assert.Equal(t, []*component.Entity{live}, defeated)
}

func TestProjectileAgainstComingPlayer(t *testing.T) {
	player := component.NewEntity(component.KindPlayer, 64)
	player.StartComing(vmath.V2(300, 480), 1)
	shot := place(component.KindEnemyShot, 32, 300, 480, 1)
	shot.Power = 1
	shot.SetTargets([]*component.Entity{player})

	r := &Resolver{}
	assert.Nil(t, r.Projectile(shot))
	assert.Equal(t, 1, player.Life)
	assert.True(t, shot.Active(), "aborted check leaves the projectile alive")
}

func TestProjectileMiss(t *testing.T) {
	shot := place(component.KindEnemyShot, 32, 0, 0, 1)
	target := place(component.KindPlayer, 64, 200, 200, 1)
	shot.SetTargets([]*component.Entity{target})

	assert.Nil(t, (&Resolver{}).Projectile(shot))
	assert.True(t, shot.Active())
}
