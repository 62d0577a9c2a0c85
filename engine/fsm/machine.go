package fsm

import "fmt"

// NewMachine creates a new FSM instance with the frame guards registered
func NewMachine[T any]() *Machine[T] {
	m := &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		names:     make(map[string]StateID),
		terminal:  make(map[StateID]bool),
		actionReg: make(map[string]actionEntry[T]),
		guardReg:  make(map[string]GuardFactoryFunc[T]),
	}
	m.RegisterGuard("at", AtFrame[T])
	m.RegisterGuard("after", AfterFrame[T])
	return m
}

// AtFrame is satisfied on exactly frame n
func AtFrame[T any](n int) GuardFunc[T] {
	return func(_ T, frame int) bool { return frame == n }
}

// AfterFrame is satisfied on every frame strictly greater than n
func AfterFrame[T any](n int) GuardFunc[T] {
	return func(_ T, frame int) bool { return frame > n }
}

// RegisterGuard adds a parameterized guard factory to the registry
func (m *Machine[T]) RegisterGuard(name string, factory GuardFactoryFunc[T]) {
	m.guardReg[name] = factory
}

// RegisterAction adds a side-effect function and its argument compiler to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T], compile ArgsCompiler) {
	m.actionReg[name] = actionEntry[T]{fn: fn, compile: compile}
}

// Activate makes id the active state and restarts its frame counter
// Existence is checked lazily by Update
func (m *Machine[T]) Activate(id StateID) {
	m.activeStateID = id
	m.frame = 0
}

// Reset activates the initial state
func (m *Machine[T]) Reset() {
	m.Activate(m.InitialStateID)
}

// Update runs one step of the active state
// Actions run in order with the current frame, then the first satisfied transition fires
// The frame always advances afterwards: a state entered by a transition sees frame 1 on its
// first step, while an external Activate starts it at 0
func (m *Machine[T]) Update(ctx T) error {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownState, m.StateName(m.activeStateID))
	}

	frame := m.frame
	for _, action := range node.OnUpdate {
		action.Func(ctx, frame, action.Args)
	}

	for _, trans := range node.Transitions {
		if trans.Guard == nil || trans.Guard(ctx, frame) {
			m.Activate(trans.TargetID)
			break
		}
	}

	m.frame++
	return nil
}

// Active returns the active state ID
func (m *Machine[T]) Active() StateID {
	return m.activeStateID
}

// Frame returns the number of completed steps in the active state
func (m *Machine[T]) Frame() int {
	return m.frame
}

// LookupState resolves a declared state name
func (m *Machine[T]) LookupState(name string) (StateID, bool) {
	id, ok := m.names[name]
	return id, ok
}

// StateName returns the declared name of id, or its number if undeclared
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	for name, declared := range m.names {
		if declared == id {
			return name
		}
	}
	return fmt.Sprintf("#%d", int(id))
}

// HasState reports whether id has a registered node
func (m *Machine[T]) HasState(id StateID) bool {
	_, ok := m.nodes[id]
	return ok
}
