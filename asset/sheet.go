package asset

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/viper/render"
)

// SpriteDef is one [sprites.<kind>] table
type SpriteDef struct {
	Glyph string `toml:"glyph"`
	Color string `toml:"color"`
	Bold  bool   `toml:"bold"`
}

// Sheet maps sprite kind names to their compiled glyphs
type Sheet struct {
	Glyphs map[string]render.Glyph
}

type sheetFile struct {
	Sprites map[string]SpriteDef `toml:"sprites"`
}

// ParseSheet decodes and validates a sprite sheet
func ParseSheet(data []byte) (*Sheet, error) {
	var f sheetFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite sheet: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown sprite sheet key '%s'", undecoded[0])
	}

	names := make([]string, 0, len(f.Sprites))
	for name := range f.Sprites {
		names = append(names, name)
	}
	sort.Strings(names)

	sheet := &Sheet{Glyphs: make(map[string]render.Glyph, len(names))}
	for _, name := range names {
		g, err := compileSprite(f.Sprites[name])
		if err != nil {
			return nil, fmt.Errorf("sprite '%s': %w", name, err)
		}
		sheet.Glyphs[name] = g
	}
	return sheet, nil
}

func compileSprite(def SpriteDef) (render.Glyph, error) {
	if utf8.RuneCountInString(def.Glyph) != 1 {
		return render.Glyph{}, fmt.Errorf("glyph must be a single character, got %q", def.Glyph)
	}
	r, _ := utf8.DecodeRuneInString(def.Glyph)

	style := tcell.StyleDefault
	if def.Color != "" {
		c := tcell.GetColor(def.Color)
		if c == tcell.ColorDefault {
			return render.Glyph{}, fmt.Errorf("unknown color '%s'", def.Color)
		}
		style = style.Foreground(c)
	}
	if def.Bold {
		style = style.Bold(true)
	}
	return render.Glyph{Rune: r, Style: style}, nil
}

// Has reports whether the sheet defines kind
func (s *Sheet) Has(kind string) bool {
	_, ok := s.Glyphs[kind]
	return ok
}
