package asset

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/viper/component"
	"github.com/lixenwraith/viper/render"
)

func testEntities() []*component.Entity {
	return []*component.Entity{
		component.NewEntity(component.KindPlayer, 64),
		component.NewEntity(component.KindEnemy, 48),
		component.NewEntity(component.KindHoming, 32),
	}
}

type glyphRecorder struct {
	mu  sync.Mutex
	got map[string]render.Glyph
}

func (r *glyphRecorder) set(kind string, g render.Glyph) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.got == nil {
		r.got = make(map[string]render.Glyph)
	}
	r.got[kind] = g
}

func TestLoaderMarksEntitiesReady(t *testing.T) {
	entities := testEntities()
	rec := &glyphRecorder{}

	l := NewLoader("", nil)
	assert.False(t, l.Ready())
	_, err := l.Sheet()
	assert.ErrorIs(t, err, ErrNotLoaded)

	l.Start(rec.set, entities)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	items := append(Readiers(entities), l)
	require.NoError(t, WaitReady(ctx, time.Millisecond, items...))

	for _, e := range entities {
		assert.True(t, e.Ready())
	}
	rec.mu.Lock()
	assert.Equal(t, 'V', rec.got["enemy"].Rune)
	assert.Len(t, rec.got, 10)
	rec.mu.Unlock()

	sheet, err := l.Sheet()
	require.NoError(t, err)
	assert.True(t, sheet.Has("boss"))
}

func TestLoaderFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[sprites.player]
glyph = "^"
color = "green"
`), 0o644))

	entities := []*component.Entity{component.NewEntity(component.KindPlayer, 64)}
	rec := &glyphRecorder{}
	l := NewLoader(path, nil)
	l.Start(rec.set, entities)
	<-l.Done()

	require.NoError(t, l.Err())
	assert.True(t, l.Ready())
	assert.Equal(t, '^', rec.got["player"].Rune)
}

func TestLoaderMissingKindFailsGate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sprites.player]\nglyph = \"A\"\n"), 0o644))

	entities := testEntities()
	l := NewLoader(path, nil)
	l.Start(nil, entities)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := WaitReady(ctx, time.Millisecond, append(Readiers(entities), l)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sprite for kind 'enemy'")

	for _, e := range entities {
		assert.False(t, e.Ready(), "nothing is marked on failure")
	}
}

func TestLoaderMissingFile(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "absent.toml"), nil)
	l.Start(nil, nil)
	<-l.Done()
	assert.Error(t, l.Err())
	assert.False(t, l.Ready())
}
