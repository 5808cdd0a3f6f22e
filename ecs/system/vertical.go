package system

import (
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/motion"
	"github.com/milk9111/strider/tuning"
)

// VerticalMotionSystem advances each character's vertical accel and adds
// the resulting fall or rise to its pending displacement.
type VerticalMotionSystem struct {
	tuning tuning.Source
}

func NewVerticalMotionSystem(src tuning.Source) *VerticalMotionSystem {
	return &VerticalMotionSystem{tuning: src}
}

func (v *VerticalMotionSystem) Update(w *ecs.World) {
	if v == nil || v.tuning == nil || w == nil {
		return
	}
	t := v.tuning.Get()
	dt := w.Delta()

	for _, c := range characters(w) {
		ch := c.character
		ch.VerticalAccel = motion.IntegrateVertical(ch.VerticalAccel, ch.Grounded, ch.Launched, ch.VerticalSpeedScale, dt, t)
		ch.PendingDirection[1] += motion.VerticalDisplacement(ch.VerticalAccel, dt, t)
	}
}
