package fsm

import "errors"

// StateID is a unique identifier for a node
// Callers declare their own IDs as an enum; StateNone is reserved
type StateID int

const StateNone StateID = 0

// ErrUnknownState is returned by Update when the active state has no registered node
// It is a configuration defect and callers are expected to stop
var ErrUnknownState = errors.New("unknown state")

// Machine is the generic flat phase machine runtime
// T is the context type passed to actions and guards (e.g., *engine.World)
type Machine[T any] struct {
	// Graph data (immutable after load)
	nodes    map[StateID]*Node[T]
	names    map[string]StateID
	terminal map[StateID]bool

	// InitialStateID is activated by Reset
	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	frame         int

	// Dependency injection
	actionReg map[string]actionEntry[T]
	guardReg  map[string]GuardFactoryFunc[T]
}

// Node is one state: ordered step actions then ordered transitions
type Node[T any] struct {
	ID   StateID
	Name string

	OnUpdate []Action[T]

	// Transitions are evaluated in order, first satisfied wins
	Transitions []Transition[T]
}

// Transition is an edge guarded by a predicate over the context and the state frame
type Transition[T any] struct {
	TargetID StateID
	Guard    GuardFunc[T] // nil = always true
}

// Action is a step side-effect with its pre-compiled arguments
type Action[T any] struct {
	Func ActionFunc[T]
	Args any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T, frame int) bool

// ActionFunc executes a side effect for the given state frame
type ActionFunc[T any] func(ctx T, frame int, args any)

// GuardFactoryFunc builds a parameterized guard from the transition's frame argument
type GuardFactoryFunc[T any] func(frame int) GuardFunc[T]

// DecodeFunc decodes the raw config table of one action into v
type DecodeFunc func(v any) error

// ArgsCompiler turns an action's config table into its Args payload
// A nil compiler leaves Args nil
type ArgsCompiler func(decode DecodeFunc) (any, error)

type actionEntry[T any] struct {
	fn      ActionFunc[T]
	compile ArgsCompiler
}
