package render

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Surface is the part of tcell.Screen the renderer draws on
type Surface interface {
	Size() (int, int)
	Clear()
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Show()
}

// Glyph is how one sprite kind looks in the terminal
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// DefaultGlyphs is used until a sprite sheet is loaded
var DefaultGlyphs = map[string]Glyph{
	"player":      {'A', tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)},
	"player_shot": {'|', tcell.StyleDefault.Foreground(tcell.ColorWhite)},
	"enemy":       {'V', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	"large":       {'W', tcell.StyleDefault.Foreground(tcell.ColorOrange)},
	"boss":        {'#', tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)},
	"enemy_shot":  {'*', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	"homing":      {'o', tcell.StyleDefault.Foreground(tcell.ColorFuchsia)},
	KindStar:      {'.', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	KindSpark:     {'░', tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 17, 102))},
	KindBanner:    {' ', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)},
}

// statusRows is reserved under the field for the status line
const statusRows = 1

// Terminal draws frames on a character grid, scaling the field to the surface
type Terminal struct {
	surface Surface

	mu     sync.RWMutex
	glyphs map[string]Glyph
}

// NewTerminal creates a renderer with the default glyphs
func NewTerminal(surface Surface) *Terminal {
	glyphs := make(map[string]Glyph, len(DefaultGlyphs))
	for k, g := range DefaultGlyphs {
		glyphs[k] = g
	}
	return &Terminal{surface: surface, glyphs: glyphs}
}

// SetGlyph replaces the look of kind; safe to call while rendering
func (t *Terminal) SetGlyph(kind string, g Glyph) {
	t.mu.Lock()
	t.glyphs[kind] = g
	t.mu.Unlock()
}

func (t *Terminal) glyph(kind string) (Glyph, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	g, ok := t.glyphs[kind]
	return g, ok
}

// Render clears the surface, draws f layer by layer and shows it
func (t *Terminal) Render(f *Frame) {
	cols, rows := t.surface.Size()
	rows -= statusRows
	if cols <= 0 || rows <= 0 || f.Width <= 0 || f.Height <= 0 {
		return
	}
	v := viewport{cols: cols, rows: rows, sx: float64(cols) / f.Width, sy: float64(rows) / f.Height}

	t.surface.Clear()

	sprites := make([]Sprite, len(f.Sprites))
	copy(sprites, f.Sprites)
	sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].Layer < sprites[j].Layer })

	for _, s := range sprites {
		g, ok := t.glyph(s.Kind)
		if !ok {
			continue
		}
		style := g.Style
		if s.Opacity < 1 {
			style = style.Dim(true)
		}
		if s.Text != "" {
			t.drawText(v, s, style)
			continue
		}
		x0, y0, x1, y1 := v.rect(s)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				t.surface.SetContent(x, y, g.Rune, nil, style)
			}
		}
	}

	status := fmt.Sprintf(" %-14s tick %-8d", f.Phase, f.Tick)
	if f.Paused {
		status += " PAUSED (q)"
	}
	for i, r := range status {
		if i >= cols {
			break
		}
		t.surface.SetContent(i, rows, r, nil, tcell.StyleDefault.Reverse(true))
	}

	t.surface.Show()
}

func (t *Terminal) drawText(v viewport, s Sprite, style tcell.Style) {
	runes := []rune(s.Text)
	cx, cy := v.cell(s.X, s.Y)
	x := cx - len(runes)/2
	for i, r := range runes {
		if v.contains(x+i, cy) {
			t.surface.SetContent(x+i, cy, r, nil, style)
		}
	}
}

// viewport maps field coordinates onto surface cells
type viewport struct {
	cols, rows int
	sx, sy     float64
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), int(math.Floor(y * v.sy))
}

func (v viewport) contains(x, y int) bool {
	return x >= 0 && x < v.cols && y >= 0 && y < v.rows
}

// rect returns the clipped inclusive cell rectangle covered by s, at least one cell
func (v viewport) rect(s Sprite) (x0, y0, x1, y1 int) {
	x0, y0 = v.cell(s.X-s.W/2, s.Y-s.H/2)
	x1, y1 = v.cell(s.X+s.W/2, s.Y+s.H/2)
	if x1 > x0 {
		x1--
	}
	if y1 > y0 {
		y1--
	}
	x0, x1 = max(x0, 0), min(x1, v.cols-1)
	y0, y1 = max(y0, 0), min(y1, v.rows-1)
	return x0, y0, x1, y1
}
