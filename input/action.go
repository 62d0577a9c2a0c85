package input

import "github.com/gdamore/tcell/v2"

// Action is a game-level meaning of a key
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionFire
	ActionPause
	ActionRestart
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "none",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionFire:    "fire",
	ActionPause:   "pause",
	ActionRestart: "restart",
	ActionQuit:    "quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// held reports whether the action is level-triggered
func (a Action) held() bool {
	return a >= ActionLeft && a <= ActionFire
}

// Resolve maps a key event to its Action using the default bindings
func Resolve(key tcell.Key, r rune) Action {
	return defaultKeys.Resolve(key, r)
}

// ParseAction returns the action named s
func ParseAction(s string) (Action, bool) {
	for a, name := range actionNames {
		if name == s {
			return Action(a), true
		}
	}
	return ActionNone, false
}
