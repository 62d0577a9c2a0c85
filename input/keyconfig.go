package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// runeAliases names characters that are awkward as bare TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyNames lists the special keys a keymap may bind
var keyNames = map[string]tcell.Key{
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-p":    tcell.KeyCtrlP,
	"ctrl-r":    tcell.KeyCtrlR,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
}

type keymapFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// LoadKeyConfig decodes a keymap file into a table holding only the listed bindings
// Only keys present in the TOML are populated; "none" unbinds a key on merge
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown section or key '%s'", undecoded[0])
	}

	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Action, len(f.Keys)),
		Runes: make(map[rune]Action, len(f.Runes)),
	}

	for name, actionName := range f.Keys {
		k, ok := keyNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("[keys] unknown key name: %q", name)
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", name, err)
		}
		kt.Keys[k] = a
	}

	for keyStr, actionName := range f.Runes {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
		}
		kt.Runes[r] = a
	}

	return kt, nil
}

// resolveRune accepts a single character or a runeAliases name
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveAction(name string) (Action, error) {
	a, ok := ParseAction(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	for k, v := range override.Keys {
		if v == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}
	for r, v := range override.Runes {
		if v == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}
	return result
}
