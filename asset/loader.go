package asset

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/viper/component"
	"github.com/lixenwraith/viper/render"
)

// ErrNotLoaded is returned by Sheet before the load finished
var ErrNotLoaded = errors.New("sprite sheet not loaded")

// GlyphSink receives each compiled glyph, typically render.Terminal.SetGlyph
type GlyphSink func(kind string, g render.Glyph)

// Loader reads the sprite sheet in the background and marks entities ready
// once their kind has a glyph
type Loader struct {
	path   string
	logger *zap.Logger

	loaded atomic.Bool

	mu    sync.Mutex
	sheet *Sheet
	err   error
	done  chan struct{}
}

// NewLoader creates a loader for the sheet at path; empty path uses DefaultSpriteSheet
func NewLoader(path string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		path:   path,
		logger: logger.Named("asset"),
		done:   make(chan struct{}),
	}
}

// Start loads in a new goroutine; sink may be nil
// Must be called once
func (l *Loader) Start(sink GlyphSink, entities []*component.Entity) {
	go func() {
		defer close(l.done)
		err := l.load(sink, entities)

		l.mu.Lock()
		l.err = err
		l.mu.Unlock()

		if err != nil {
			l.logger.Error("sprite sheet", zap.String("path", l.path), zap.Error(err))
			return
		}
		l.loaded.Store(true)
	}()
}

func (l *Loader) load(sink GlyphSink, entities []*component.Entity) error {
	data := []byte(DefaultSpriteSheet)
	if l.path != "" {
		b, err := os.ReadFile(l.path)
		if err != nil {
			return fmt.Errorf("read sprite sheet: %w", err)
		}
		data = b
	}

	sheet, err := ParseSheet(data)
	if err != nil {
		return err
	}

	// Every kind must be drawable before anything is marked ready
	for _, e := range entities {
		if !sheet.Has(e.Kind.String()) {
			return fmt.Errorf("no sprite for kind '%s'", e.Kind)
		}
	}

	if sink != nil {
		for kind, g := range sheet.Glyphs {
			sink(kind, g)
		}
	}
	for _, e := range entities {
		e.MarkReady()
	}

	l.mu.Lock()
	l.sheet = sheet
	l.mu.Unlock()

	l.logger.Info("sprite sheet loaded", zap.Int("sprites", len(sheet.Glyphs)), zap.Int("entities", len(entities)))
	return nil
}

// Ready reports a successful load
func (l *Loader) Ready() bool {
	return l.loaded.Load()
}

// Err returns the load failure, nil while loading or after success
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Done is closed when the load finished, successfully or not
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Sheet returns the loaded sheet
func (l *Loader) Sheet() (*Sheet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sheet == nil {
		return nil, ErrNotLoaded
	}
	return l.sheet, nil
}
