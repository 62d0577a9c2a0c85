package fsm

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// LoadConfig parses a TOML schedule and populates the Machine
// Every named state must have been declared; all references are validated
// Any previously loaded graph is discarded
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	md, err := toml.Decode(string(data), &config)
	if err != nil {
		return fmt.Errorf("failed to unmarshal schedule: %w", err)
	}

	m.nodes = make(map[StateID]*Node[T])
	m.activeStateID = StateNone
	m.frame = 0

	// Sort keys for deterministic error reporting
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		names = append(names, name)
	}
	sort.Strings(names)

	// First pass: nodes
	for _, name := range names {
		id, ok := m.names[name]
		if !ok {
			return fmt.Errorf("state '%s' is not a known phase", name)
		}
		m.AddState(id, name)
	}

	// Second pass: actions and transitions
	for _, name := range names {
		cfg := config.States[name]
		id := m.names[name]

		actions, err := m.compileActions(md, cfg.Actions)
		if err != nil {
			return fmt.Errorf("state '%s' actions: %w", name, err)
		}
		m.nodes[id].OnUpdate = actions

		if err := m.compileTransitions(id, cfg.Transitions); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	initialID, ok := m.names[config.InitialState]
	if !ok || !m.HasState(initialID) {
		return fmt.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.InitialStateID = initialID

	return nil
}

func (m *Machine[T]) compileActions(md toml.MetaData, raws []toml.Primitive) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(raws))
	for i, raw := range raws {
		var head actionHeader
		if err := md.PrimitiveDecode(raw, &head); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}

		entry, ok := m.actionReg[head.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", head.Action)
		}

		var args any
		if entry.compile != nil {
			decode := func(v any) error { return md.PrimitiveDecode(raw, v) }
			compiled, err := entry.compile(decode)
			if err != nil {
				return nil, fmt.Errorf("action '%s': %w", head.Action, err)
			}
			args = compiled
		}

		actions = append(actions, Action[T]{
			Func: entry.fn,
			Args: args,
		})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(sourceID StateID, configs []TransitionConfig) error {
	for _, cfg := range configs {
		targetID, ok := m.names[cfg.Target]
		if !ok || !m.HasState(targetID) {
			return fmt.Errorf("transition references unknown target '%s'", cfg.Target)
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			factory, ok := m.guardReg[cfg.Guard]
			if !ok {
				return fmt.Errorf("unknown guard '%s'", cfg.Guard)
			}
			guard = factory(cfg.Frame)
		}

		if err := m.AddTransition(sourceID, Transition[T]{
			TargetID: targetID,
			Guard:    guard,
		}); err != nil {
			return err
		}
	}
	return nil
}
