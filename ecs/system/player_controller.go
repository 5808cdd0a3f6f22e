package system

import (
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/motion"
	"github.com/milk9111/strider/tuning"
	"github.com/rs/zerolog/log"
)

// PlayerControllerSystem turns the tick's intent into jumps and dashes.
// It must run after InputSystem in the input phase.
type PlayerControllerSystem struct {
	tuning tuning.Source
}

func NewPlayerControllerSystem(src tuning.Source) *PlayerControllerSystem {
	return &PlayerControllerSystem{tuning: src}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || p.tuning == nil || w == nil {
		return
	}
	t := p.tuning.Get()

	for _, c := range characters(w) {
		c.character.Launched = false
		if c.input == nil {
			continue
		}

		if c.input.Dash && c.dash != nil && !c.dash.Active {
			c.dash.Active = true
			c.dash.BaseSpeed = c.character.HorizontalSpeed
			c.dash.Remaining = c.dash.Duration
			c.character.HorizontalSpeed = t.DashSpeed
			pushMotion(w, c.entity, ecs.MotionDashed)
		}

		// The sensor decides whether a jump is allowed. A character still
		// rising from the last jump cannot jump again.
		if !c.input.Jump || c.sensor == nil || !c.sensor.Grounded {
			continue
		}
		if c.character.VerticalAccel < 0 {
			continue
		}
		before := c.character.VerticalAccel
		c.character.VerticalAccel = motion.ApplyJump(before, t)
		c.character.Launched = true
		log.Debug().Stringer("entity", c.entity).Float64("from", before).Float64("to", c.character.VerticalAccel).Msg("jump")
		pushMotion(w, c.entity, ecs.MotionJumped)
	}
}
