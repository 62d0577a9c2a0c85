package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (arrows, Enter, Ctrl+*)
	Keys map[tcell.Key]Action

	// Printable characters
	Runes map[rune]Action
}

var defaultKeys = DefaultKeyTable()

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyEnter:  ActionRestart,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'z': ActionFire,
			'Z': ActionFire,
			'q': ActionPause,
		},
	}
}

// Resolve maps a key event to its Action, ActionNone when unbound
func (kt *KeyTable) Resolve(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.Keys[key]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
		Runes: make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}
