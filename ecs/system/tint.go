package system

import (
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	groundedTint = colornames.Lightcyan
	airborneTint = colornames.Orange
)

// TintSystem colours characters by their grounded state.
type TintSystem struct{}

func NewTintSystem() *TintSystem {
	return &TintSystem{}
}

func (s *TintSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CharacterComponent.Kind(), component.TintComponent.Kind(), func(e ecs.Entity, c *component.Character, t *component.Tint) {
		if c.Grounded {
			t.Color = groundedTint
			return
		}
		t.Color = airborneTint
	})
}
