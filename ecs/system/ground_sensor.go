package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/strider/common"
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/ecs/component"
	"github.com/milk9111/strider/physics"
)

var down = mgl64.Vec3{0, -1, 0}

// GroundSensorSystem probes below every character's collision volume and
// records whether it stands on something. It runs first in a tick, so it
// sees the position the previous tick's move resolved to.
type GroundSensorSystem struct {
	world *physics.World
}

func NewGroundSensorSystem(world *physics.World) *GroundSensorSystem {
	return &GroundSensorSystem{world: world}
}

func (s *GroundSensorSystem) Update(w *ecs.World) {
	if s == nil || s.world == nil || w == nil {
		return
	}

	for _, c := range characters(w) {
		if c.sensor == nil || c.body == nil {
			continue
		}
		was := c.sensor.Grounded

		hit, ok := s.probe(c.sensor, c.body)
		c.sensor.Grounded = ok
		c.sensor.Distance = -1
		if ok {
			c.sensor.Distance = hit.Distance
		}
		c.character.Grounded = c.sensor.Grounded

		switch {
		case c.sensor.Grounded && !was:
			pushMotion(w, c.entity, ecs.MotionGrounded)
		case !c.sensor.Grounded && was:
			pushMotion(w, c.entity, ecs.MotionAirborne)
		}
	}
}

func (s *GroundSensorSystem) probe(sensor *component.GroundSensor, body *component.KinematicBody) (physics.Hit, bool) {
	bounds, ok := s.world.Bounds(body.Collider)
	if !ok {
		return physics.Hit{}, false
	}
	tolerance := sensor.ContactTolerance
	if !common.Finite(tolerance) || tolerance < 0 {
		return physics.Hit{}, false
	}

	filter := physics.QueryFilter{ExcludeKinematic: true, Exclude: body.Collider}
	center := bounds.Center()

	var hit physics.Hit
	switch sensor.Mode {
	case component.ProbeRay:
		origin := mgl64.Vec3{center.X(), bounds.Min.Y(), center.Z()}
		hit, ok = s.world.CastRay(origin, down, tolerance, filter)
	default:
		half := mgl64.Vec3{sensor.ProbeRadius, sensor.ProbeHalfHeight, sensor.ProbeRadius}
		origin := mgl64.Vec3{center.X(), bounds.Min.Y() + sensor.ProbeHalfHeight, center.Z()}
		hit, ok = s.world.CastShape(origin, half, down, tolerance, filter)
	}
	if !ok || !acceptContact(sensor, hit) {
		return physics.Hit{}, false
	}
	return hit, true
}

// acceptContact rejects hits that cannot be ground: bad distances and
// surfaces steeper than the sensor's slope limit.
func acceptContact(sensor *component.GroundSensor, hit physics.Hit) bool {
	if !common.Finite(hit.Distance) || hit.Distance < 0 || hit.Distance > sensor.ContactTolerance {
		return false
	}
	for _, v := range hit.Normal {
		if !common.Finite(v) {
			return false
		}
	}
	if sensor.MaxSlopeAngle <= 0 {
		return true
	}
	n := hit.Normal
	if l := n.Len(); l > 0 {
		n = n.Mul(1 / l)
	}
	// Starting inside a collider reports the reversed probe direction,
	// which is straight up and always passes.
	return n.Y() >= math.Cos(mgl64.DegToRad(sensor.MaxSlopeAngle))-common.Epsilon
}
