package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/strider/physics"
)

// StaticBody marks level geometry registered as a static collider.
type StaticBody struct {
	Collider    physics.ColliderID
	HalfExtents mgl64.Vec3
}

var StaticBodyComponent = NewComponent[StaticBody]()

// ArenaBounds is the box enclosing every static collider of the loaded
// arena.
type ArenaBounds struct {
	Bounds physics.AABB
}

var ArenaBoundsComponent = NewComponent[ArenaBounds]()
