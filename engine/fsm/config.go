package fsm

import "github.com/BurntSushi/toml"

// RootConfig represents the top-level schedule file
type RootConfig struct {
	InitialState string                 `toml:"initial"`
	States       map[string]StateConfig `toml:"phases"`
}

// StateConfig represents a single state definition
// Actions stay undecoded until their registered compiler picks the argument type
type StateConfig struct {
	Actions     []toml.Primitive   `toml:"actions"`
	Transitions []TransitionConfig `toml:"transitions"`
}

// TransitionConfig represents a transition definition
type TransitionConfig struct {
	Target string `toml:"target"`          // Target state name
	Guard  string `toml:"guard,omitempty"` // Guard factory name, empty = always
	Frame  int    `toml:"frame,omitempty"` // Guard parameter
}

// actionHeader is the part of an action table common to every action
type actionHeader struct {
	Action string `toml:"action"`
}
