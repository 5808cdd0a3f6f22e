package system

import (
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/motion"
	"github.com/milk9111/strider/tuning"
)

// HorizontalMotionSystem writes the ground-plane part of each character's
// pending displacement from its intent and facing.
type HorizontalMotionSystem struct {
	tuning tuning.Source
}

func NewHorizontalMotionSystem(src tuning.Source) *HorizontalMotionSystem {
	return &HorizontalMotionSystem{tuning: src}
}

func (h *HorizontalMotionSystem) Update(w *ecs.World) {
	if h == nil || h.tuning == nil || w == nil {
		return
	}
	policy := h.tuning.Get().Diagonal
	dt := w.Delta()

	for _, c := range characters(w) {
		if c.input == nil || c.transform == nil {
			continue
		}
		dir := motion.HorizontalDirection(*c.input, *c.transform, policy)
		step := motion.HorizontalDisplacement(dir, c.character.HorizontalSpeed, dt)
		c.character.PendingDirection[0] = step.X()
		c.character.PendingDirection[2] = step.Z()
	}
}
