// Package input turns raw key state into movement intent through a
// remappable set of bindings.
package input

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/milk9111/strider/prefabs"
	"gopkg.in/yaml.v3"
)

// Action is a logical control a key can be bound to.
type Action string

const (
	ActionForward Action = "forward"
	ActionBack    Action = "back"
	ActionLeft    Action = "left"
	ActionRight   Action = "right"
	ActionJump    Action = "jump"
	ActionDash    Action = "dash"
)

// Actions lists every action in a stable order.
var Actions = []Action{ActionForward, ActionBack, ActionLeft, ActionRight, ActionJump, ActionDash}

var (
	ErrUnknownAction = errors.New("input: unknown action")
	ErrUnboundAction = errors.New("input: action has no keys")
)

func (a Action) valid() bool {
	return slices.Contains(Actions, a)
}

// Bindings maps each action to one or more key names. A Bindings value is
// never modified after construction; use With to rebind.
type Bindings struct {
	keys map[Action][]string
}

// NewBindings validates m and copies it. Every action needs at least one
// key. Key names are case-insensitive.
func NewBindings(m map[Action][]string) (Bindings, error) {
	keys := make(map[Action][]string, len(Actions))
	for action, names := range m {
		if !action.valid() {
			return Bindings{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
		}
		keys[action] = normalizeKeys(names)
	}
	for _, action := range Actions {
		if len(keys[action]) == 0 {
			return Bindings{}, fmt.Errorf("%w: %s", ErrUnboundAction, action)
		}
	}
	return Bindings{keys: keys}, nil
}

// DefaultBindings is the WASD layout with space to jump and left shift to
// dash.
func DefaultBindings() Bindings {
	b, _ := NewBindings(map[Action][]string{
		ActionForward: {"W"},
		ActionBack:    {"S"},
		ActionLeft:    {"A"},
		ActionRight:   {"D"},
		ActionJump:    {"Space"},
		ActionDash:    {"ShiftLeft"},
	})
	return b
}

// Keys returns a copy of the key names bound to action.
func (b Bindings) Keys(action Action) []string {
	return slices.Clone(b.keys[action])
}

// With returns new bindings where action is bound to keys. The receiver is
// left unchanged.
func (b Bindings) With(action Action, keys ...string) (Bindings, error) {
	m := make(map[Action][]string, len(b.keys)+1)
	for a, k := range b.keys {
		m[a] = k
	}
	m[action] = keys
	return NewBindings(m)
}

// ParseBindings decodes a YAML mapping of action to key list.
func ParseBindings(data []byte) (Bindings, error) {
	var raw map[Action][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Bindings{}, fmt.Errorf("input: decode bindings: %w", err)
	}
	return NewBindings(raw)
}

// LoadBindings reads a bindings prefab by name.
func LoadBindings(name string) (Bindings, error) {
	data, err := prefabs.Load(name)
	if err != nil {
		return Bindings{}, fmt.Errorf("input: load %s: %w", name, err)
	}
	b, err := ParseBindings(data)
	if err != nil {
		return Bindings{}, fmt.Errorf("input: %s: %w", name, err)
	}
	return b, nil
}

func normalizeKeys(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = normalizeKey(name)
		if name == "" || slices.Contains(out, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
