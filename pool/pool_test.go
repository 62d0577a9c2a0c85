package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slot struct {
	id   int
	life int
}

func (s *slot) Active() bool { return s.life > 0 }
func (s *slot) Deactivate()  { s.life = 0 }

func newTestPool(n int) *Pool[*slot] {
	return New("test", n, func(i int) *slot { return &slot{id: i} })
}

func TestClaimReusesLowestInactive(t *testing.T) {
	p := newTestPool(4)

	for i := 0; i < 3; i++ {
		s, ok := p.Claim()
		require.True(t, ok)
		assert.Equal(t, i, s.id)
		s.life = 1
	}

	p.At(1).life = 0

	s, ok := p.Claim()
	require.True(t, ok)
	assert.Equal(t, 1, s.id, "freed slot 1 must be reused before untouched slot 3")
}

func TestClaimBeyondCapacityIsDropped(t *testing.T) {
	p := newTestPool(10)

	claimed := 0
	for i := 0; i < 11; i++ {
		s, ok := p.Claim()
		if !ok {
			continue
		}
		s.life = 1
		claimed++
	}

	assert.Equal(t, 10, claimed)
	assert.Equal(t, 10, p.ActiveCount())
	assert.Equal(t, 10, p.Cap())

	_, ok := p.Claim()
	assert.False(t, ok)
}

func TestEachActiveSkipsSlotsKilledDuringIteration(t *testing.T) {
	p := newTestPool(3)
	p.Each(func(s *slot) { s.life = 1 })

	var visited []int
	p.EachActive(func(s *slot) {
		visited = append(visited, s.id)
		if s.id == 0 {
			p.At(2).life = 0
		}
	})

	assert.Equal(t, []int{0, 1}, visited)
}

func TestReset(t *testing.T) {
	p := newTestPool(5)
	p.Each(func(s *slot) { s.life = 3 })
	require.Equal(t, 5, p.ActiveCount())

	p.Reset()

	assert.Equal(t, 0, p.ActiveCount())
	assert.Equal(t, "test", p.Name())
	assert.Len(t, p.Items(), 5)
}
