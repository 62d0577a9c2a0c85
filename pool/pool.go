// Package pool provides fixed-capacity recycling collections
// A slot is free when it reports inactive; claiming scans slots in order and
// never allocates, queues or grows
package pool

// Slot is anything a Pool can recycle
type Slot interface {
	Active() bool
	Deactivate()
}

// Pool is a fixed-size ordered arena of T
// Not safe for concurrent use: the simulation owner is the only writer
type Pool[T Slot] struct {
	name  string
	items []T
}

// New creates a pool of capacity slots built by newSlot
func New[T Slot](name string, capacity int, newSlot func(i int) T) *Pool[T] {
	items := make([]T, capacity)
	for i := range items {
		items[i] = newSlot(i)
	}
	return &Pool[T]{name: name, items: items}
}

// Claim returns the lowest-index inactive slot
// Returns false when every slot is active; the request is dropped
func (p *Pool[T]) Claim() (T, bool) {
	for _, it := range p.items {
		if !it.Active() {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Each calls fn for every slot in index order, active or not
func (p *Pool[T]) Each(fn func(T)) {
	for _, it := range p.items {
		fn(it)
	}
}

// EachActive calls fn for every active slot in index order
// Activity is re-checked per slot, so slots deactivated by an earlier call are skipped
func (p *Pool[T]) EachActive(fn func(T)) {
	for _, it := range p.items {
		if it.Active() {
			fn(it)
		}
	}
}

// Items exposes the backing slice; callers must not append to it
func (p *Pool[T]) Items() []T {
	return p.items
}

// At returns slot i
func (p *Pool[T]) At(i int) T {
	return p.items[i]
}

func (p *Pool[T]) Cap() int {
	return len(p.items)
}

func (p *Pool[T]) Name() string {
	return p.name
}

// ActiveCount returns the number of active slots
func (p *Pool[T]) ActiveCount() int {
	n := 0
	for _, it := range p.items {
		if it.Active() {
			n++
		}
	}
	return n
}

// Reset deactivates every slot
func (p *Pool[T]) Reset() {
	for _, it := range p.items {
		it.Deactivate()
	}
}
