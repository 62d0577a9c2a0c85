package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Tracker turns terminal key presses into held-key snapshots
// Terminals report presses and auto-repeat but no releases, so a key counts as
// held until hold has elapsed since its last press
type Tracker struct {
	mu   sync.Mutex
	hold time.Duration
	now  func() time.Time
	keys *KeyTable

	lastPress [actionCount]time.Time
	pause     bool
	restart   bool
}

// NewTracker creates a tracker; now defaults to time.Now when nil
func NewTracker(hold time.Duration, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{hold: hold, now: now, keys: defaultKeys}
}

// SetKeyTable replaces the bindings used by Handle
func (t *Tracker) SetKeyTable(kt *KeyTable) {
	t.mu.Lock()
	t.keys = kt
	t.mu.Unlock()
}

// HandleEvent feeds a tcell event; non-key events are ignored
// Returns the resolved action so the caller can react to ActionQuit
func (t *Tracker) HandleEvent(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}
	return t.Handle(key.Key(), key.Rune())
}

// Handle records one key press
func (t *Tracker) Handle(key tcell.Key, r rune) Action {
	t.mu.Lock()
	a := t.keys.Resolve(key, r)
	t.mu.Unlock()
	t.Press(a)
	return a
}

// Press records an action directly
func (t *Tracker) Press(a Action) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case a.held():
		t.lastPress[a] = t.now()
	case a == ActionPause:
		t.pause = !t.pause
	case a == ActionRestart:
		t.restart = true
	}
}

// Snapshot returns the current held keys and consumes pending edges
// A pause pressed twice before the next read cancels out
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	s := Snapshot{
		Left:    t.isHeld(ActionLeft, now),
		Right:   t.isHeld(ActionRight, now),
		Up:      t.isHeld(ActionUp, now),
		Down:    t.isHeld(ActionDown, now),
		Fire:    t.isHeld(ActionFire, now),
		Pause:   t.pause,
		Restart: t.restart,
	}
	t.pause = false
	t.restart = false
	return s
}

// Release drops every held key, used on focus loss
func (t *Tracker) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastPress = [actionCount]time.Time{}
}

func (t *Tracker) isHeld(a Action, now time.Time) bool {
	last := t.lastPress[a]
	return !last.IsZero() && now.Sub(last) < t.hold
}
