package input

import "github.com/milk9111/strider/ecs/component"

// Mapper converts key state into an Input component through Bindings.
type Mapper struct {
	bindings Bindings
}

func NewMapper(b Bindings) *Mapper {
	return &Mapper{bindings: b}
}

func (m *Mapper) Bindings() Bindings {
	return m.bindings
}

// Rebind swaps the bindings used by later reads.
func (m *Mapper) Rebind(b Bindings) {
	m.bindings = b
}

// Read samples keys once. A nil source reads as nothing held.
func (m *Mapper) Read(keys KeySource) component.Input {
	if m == nil || keys == nil {
		return component.Input{}
	}
	return component.Input{
		Forward: m.held(keys, ActionForward),
		Back:    m.held(keys, ActionBack),
		Left:    m.held(keys, ActionLeft),
		Right:   m.held(keys, ActionRight),
		Jump:    m.held(keys, ActionJump),
		Dash:    m.held(keys, ActionDash),
	}
}

func (m *Mapper) held(keys KeySource, action Action) bool {
	for _, k := range m.bindings.keys[action] {
		if keys.Pressed(k) {
			return true
		}
	}
	return false
}
