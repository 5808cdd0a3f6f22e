package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/strider/physics"
)

// KinematicBody links an entity to its collider in the collision world.
type KinematicBody struct {
	Collider physics.ColliderID
	Body     physics.Box
	// MoveShape, when set, is the box the mover sweeps instead of Body.
	MoveShape *physics.Box
	Output    KinematicOutput
}

// KinematicOutput is what the mover reported for the last resolved tick.
type KinematicOutput struct {
	Desired     mgl64.Vec3
	Translation mgl64.Vec3
	Grounded    bool
	Collisions  int
}

var KinematicBodyComponent = NewComponent[KinematicBody]()
