package system

import (
	"github.com/milk9111/strider/ecs"
)

// DashSystem counts down active dashes and restores the base speed when
// one runs out. A dash with zero Duration never expires.
type DashSystem struct{}

func NewDashSystem() *DashSystem {
	return &DashSystem{}
}

func (s *DashSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	for _, c := range characters(w) {
		d := c.dash
		if d == nil || !d.Active || d.Duration <= 0 {
			continue
		}
		d.Remaining -= dt
		if d.Remaining > 0 {
			continue
		}
		d.Active = false
		d.Remaining = 0
		c.character.HorizontalSpeed = d.BaseSpeed
		pushMotion(w, c.entity, ecs.MotionDashEnded)
	}
}
