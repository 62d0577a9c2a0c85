package fsm

import "fmt"

// DeclareState binds a config name to a caller-defined ID without creating a node
// Config files may only name declared states
func (m *Machine[T]) DeclareState(id StateID, name string) {
	if id == StateNone {
		panic("fsm: StateNone cannot be declared")
	}
	if prev, ok := m.names[name]; ok && prev != id {
		panic(fmt.Sprintf("fsm: state name %q already declared as %d", name, prev))
	}
	m.names[name] = id
}

// MarkTerminal forbids outgoing transitions from id
// The state can only be left by an external Activate
func (m *Machine[T]) MarkTerminal(id StateID) {
	m.terminal[id] = true
}

// AddState adds a node to the machine manually, declaring its name
// Useful for constructing the graph programmatically or during config load
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	m.DeclareState(id, name)
	node := &Node[T]{
		ID:          id,
		Name:        name,
		OnUpdate:    make([]Action[T], 0),
		Transitions: make([]Transition[T], 0),
	}
	m.nodes[id] = node
	return node
}

// AddAction appends a step action to a specific node
func (m *Machine[T]) AddAction(sourceID StateID, a Action[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.OnUpdate = append(node.OnUpdate, a)
	}
}

// AddTransition appends a transition to a specific node
// Transitions out of terminal states are rejected
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) error {
	node, ok := m.nodes[sourceID]
	if !ok {
		return fmt.Errorf("%w: source %d", ErrUnknownState, sourceID)
	}
	if m.terminal[sourceID] {
		return fmt.Errorf("state '%s' is terminal and cannot have transitions", node.Name)
	}
	if _, ok := m.nodes[t.TargetID]; !ok {
		return fmt.Errorf("%w: transition target %d from '%s'", ErrUnknownState, t.TargetID, node.Name)
	}
	node.Transitions = append(node.Transitions, t)
	return nil
}
