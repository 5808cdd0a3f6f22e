package system

import (
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/ecs/component"
	"github.com/milk9111/strider/physics"
)

// PhysicsSystem resolves every translation submitted this tick and copies
// the resulting positions back onto the entities.
type PhysicsSystem struct {
	world *physics.World
}

func NewPhysicsSystem(world *physics.World) *PhysicsSystem {
	return &PhysicsSystem{world: world}
}

func (ps *PhysicsSystem) World() *physics.World {
	if ps == nil {
		return nil
	}
	return ps.world
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || ps.world == nil || w == nil {
		return
	}

	results := ps.world.Step()
	if len(results) == 0 {
		return
	}
	byCollider := make(map[physics.ColliderID]physics.MoveResult, len(results))
	for _, r := range results {
		byCollider[r.Collider] = r
	}

	ecs.ForEach2(w, component.KinematicBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.KinematicBody, tr *component.Transform) {
		r, ok := byCollider[body.Collider]
		if !ok {
			return
		}
		if pos, ok := ps.world.Position(body.Collider); ok {
			tr.Position = pos
		}
		body.Output = component.KinematicOutput{
			Desired:     r.Desired,
			Translation: r.Translation,
			Grounded:    r.Grounded,
			Collisions:  r.Collisions,
		}
	})
}
