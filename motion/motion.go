// Package motion holds the per-tick movement math shared by the character
// systems. Every function is total: out of range input is clamped, never
// rejected.
package motion

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/strider/clock"
	"github.com/milk9111/strider/common"
	"github.com/milk9111/strider/ecs/component"
	"github.com/milk9111/strider/tuning"
)

// ApplyJump returns the vertical accel after a jump impulse. Any fall speed
// above gravity is shed first so every jump from the ground starts from the
// same height profile. A rising accel is raised to zero so impulses never
// stack.
func ApplyJump(accel float64, t tuning.Tuning) float64 {
	if !common.Finite(accel) {
		accel = t.Gravity
	}
	if accel > t.Gravity {
		accel = t.Gravity
	}
	if accel < 0 {
		accel = 0
	}
	return t.ClampAccel(accel + t.JumpImpulse)
}

// IntegrateVertical advances the vertical accel by one tick. On the ground
// it decays toward GroundMin; in the air gravity builds it up. A launched
// tick only clamps, so the impulse is not damped away before it moves the
// character. A rising accel keeps taking gravity even while the sensor still
// reports ground, so the jump survives short ticks near the floor.
func IntegrateVertical(accel float64, grounded, launched bool, speedScale, dt float64, t tuning.Tuning) float64 {
	dt = clock.Sanitize(dt)
	if !common.Finite(speedScale) {
		speedScale = 0
	}
	switch {
	case launched:
		return t.ClampAccel(accel)
	case grounded && !(accel < 0):
		return t.ClampGround(accel - speedScale*t.GroundDamping*dt)
	default:
		return t.ClampAccel(accel + t.Gravity*speedScale*dt)
	}
}

// VerticalDisplacement converts accel into this tick's Y offset. Positive
// accel moves down.
func VerticalDisplacement(accel, dt float64, t tuning.Tuning) float64 {
	dt = clock.Sanitize(dt)
	if !common.Finite(accel) {
		return 0
	}
	return -accel * t.VerticalScaleFactor * dt
}

// HorizontalDirection sums the facing basis vectors of the held axes on the
// XZ plane. With DiagonalClamp the result is at most unit length.
func HorizontalDirection(in component.Input, tr component.Transform, policy tuning.DiagonalPolicy) mgl64.Vec3 {
	var dir mgl64.Vec3
	if in.Forward {
		dir = dir.Add(flatten(tr.Forward()))
	}
	if in.Back {
		dir = dir.Add(flatten(tr.Back()))
	}
	if in.Left {
		dir = dir.Add(flatten(tr.Left()))
	}
	if in.Right {
		dir = dir.Add(flatten(tr.Right()))
	}

	if policy != tuning.DiagonalSum {
		if l := dir.Len(); l > 1 {
			dir = dir.Mul(1 / l)
		}
	}
	return zeroSmall(dir)
}

// HorizontalDisplacement scales a direction by speed and the tick length.
func HorizontalDisplacement(dir mgl64.Vec3, speed, dt float64) mgl64.Vec3 {
	dt = clock.Sanitize(dt)
	if !common.Finite(speed) {
		return mgl64.Vec3{}
	}
	return dir.Mul(speed * dt)
}

// flatten projects v onto the ground plane, keeping it unit length when it
// has any horizontal part.
func flatten(v mgl64.Vec3) mgl64.Vec3 {
	v[1] = 0
	l := v.Len()
	if l < common.Epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

func zeroSmall(v mgl64.Vec3) mgl64.Vec3 {
	for i := range v {
		if v[i] > -common.Epsilon && v[i] < common.Epsilon {
			v[i] = 0
		}
	}
	return v
}
