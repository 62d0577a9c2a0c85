package input

// Snapshot is the held-key state read once per tick by the simulation
// Pause and Restart are edges: set only in the first snapshot after the key press
type Snapshot struct {
	Left, Right, Up, Down bool
	Fire                  bool

	Pause   bool
	Restart bool
}

// Moving reports whether any direction is held
func (s Snapshot) Moving() bool {
	return s.Left || s.Right || s.Up || s.Down
}

// Source supplies snapshots to the tick loop
// Implementations must be safe to call from the tick goroutine while fed from another
type Source interface {
	Snapshot() Snapshot
}

// SourceFunc adapts a plain function to Source
type SourceFunc func() Snapshot

func (f SourceFunc) Snapshot() Snapshot {
	return f()
}

// Idle is a Source with nothing pressed
var Idle Source = SourceFunc(func() Snapshot { return Snapshot{} })
