package component

import "github.com/go-gl/mathgl/mgl64"

// Character is the per-entity movement record shared by the sense, input,
// motion and apply phases.
type Character struct {
	// PendingDirection accumulates this tick's displacement. The kinematic
	// driver zeroes it after submitting.
	PendingDirection mgl64.Vec3
	// VerticalAccel is positive while falling and negative while rising
	// after a jump.
	VerticalAccel      float64
	HorizontalSpeed    float64
	VerticalSpeedScale float64
	// Grounded mirrors GroundSensor.Grounded.
	Grounded bool
	// Launched is set on the tick a jump impulse is applied.
	Launched bool
}

var CharacterComponent = NewComponent[Character]()
