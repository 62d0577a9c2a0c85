package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestResolve(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyLeft, 0, ActionLeft},
		{tcell.KeyDown, 0, ActionDown},
		{tcell.KeyRune, 'z', ActionFire},
		{tcell.KeyRune, 'q', ActionPause},
		{tcell.KeyEnter, 0, ActionRestart},
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyCtrlC, 0, ActionQuit},
		{tcell.KeyRune, 'x', ActionNone},
		{tcell.KeyTab, 0, ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.key, tt.r))
		})
	}
}

func TestTrackerHoldWindow(t *testing.T) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	tr := NewTracker(120*time.Millisecond, clk.now)

	tr.Handle(tcell.KeyLeft, 0)
	tr.Handle(tcell.KeyRune, 'z')

	s := tr.Snapshot()
	assert.True(t, s.Left)
	assert.True(t, s.Fire)
	assert.False(t, s.Right)
	assert.True(t, s.Moving())

	clk.t = clk.t.Add(119 * time.Millisecond)
	assert.True(t, tr.Snapshot().Left, "still within the hold window")

	// Auto-repeat refreshes the window
	tr.Handle(tcell.KeyLeft, 0)
	clk.t = clk.t.Add(100 * time.Millisecond)
	s = tr.Snapshot()
	assert.True(t, s.Left)
	assert.False(t, s.Fire, "fire was not repeated")

	clk.t = clk.t.Add(time.Second)
	assert.Equal(t, Snapshot{}, tr.Snapshot())
}

func TestTrackerEdges(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	tr := NewTracker(100*time.Millisecond, clk.now)

	tr.Handle(tcell.KeyRune, 'q')
	tr.Handle(tcell.KeyEnter, 0)

	s := tr.Snapshot()
	assert.True(t, s.Pause)
	assert.True(t, s.Restart)

	s = tr.Snapshot()
	assert.False(t, s.Pause, "edges are consumed by the first read")
	assert.False(t, s.Restart)

	tr.Press(ActionPause)
	tr.Press(ActionPause)
	assert.False(t, tr.Snapshot().Pause)
}

func TestTrackerRelease(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	tr := NewTracker(time.Second, clk.now)
	tr.Press(ActionUp)
	tr.Release()
	assert.False(t, tr.Snapshot().Up)
}

func TestTrackerQuit(t *testing.T) {
	tr := NewTracker(time.Second, nil)
	assert.Equal(t, ActionQuit, tr.Handle(tcell.KeyEscape, 0))
	assert.Equal(t, Snapshot{}, tr.Snapshot())
}
