package system

import (
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/ecs/component"
	"github.com/milk9111/strider/input"
)

// InputSystem samples the key source once per tick and writes the mapped
// intent to every player-controlled entity.
type InputSystem struct {
	mapper *input.Mapper
	keys   input.KeySource
}

func NewInputSystem(mapper *input.Mapper, keys input.KeySource) *InputSystem {
	return &InputSystem{mapper: mapper, keys: keys}
}

// SetKeys swaps the key source read on later ticks.
func (i *InputSystem) SetKeys(keys input.KeySource) {
	i.keys = keys
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	intent := i.mapper.Read(i.keys)
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, in *component.Input) {
		*in = intent
	})
}
